// Package job loads and validates the job files that drive a demo run:
// what text to process, which channels to notify, and where exports go.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Spec is the structured input for a run. Input carries inline text;
// InputFile points at a document on disk. Exactly one must be set.
type Spec struct {
	Name      string   `json:"name" yaml:"name"`
	Input     string   `json:"input" yaml:"input"`
	InputFile string   `json:"input_file" yaml:"input_file"`
	Channels  []string `json:"channels" yaml:"channels"`
	Languages []string `json:"languages" yaml:"languages"`
	OutputDir string   `json:"output_dir" yaml:"output_dir"`
	Enhancer  string   `json:"enhancer" yaml:"enhancer"`
	Model     string   `json:"model" yaml:"model"`
}

// ValidationResult represents the outcome of a linting pass.
type ValidationResult struct {
	Valid    bool
	Warnings []string
	Errors   []string
}

// Load reads a job spec from a file (JSON or YAML).
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var spec Spec
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal JSON job: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML job: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported job format: %s (use .json or .yaml)", ext)
	}

	return &spec, nil
}

// Validate checks the Spec for completeness.
func Validate(spec Spec) ValidationResult {
	res := ValidationResult{
		Valid:    true,
		Warnings: []string{},
		Errors:   []string{},
	}

	if spec.Input == "" && spec.InputFile == "" {
		res.Valid = false
		res.Errors = append(res.Errors, "either input or input_file is required")
	}
	if spec.Input != "" && spec.InputFile != "" {
		res.Valid = false
		res.Errors = append(res.Errors, "input and input_file are mutually exclusive")
	}

	if spec.Name == "" {
		res.Warnings = append(res.Warnings, "job has no name; run history will use a generated id")
	}
	if spec.OutputDir == "" {
		res.Warnings = append(res.Warnings, "no output_dir set; defaulting to ./output")
	}

	return res
}

// ResolveInput returns the text to process, reading InputFile if set.
func (s *Spec) ResolveInput() (string, error) {
	if s.Input != "" {
		return s.Input, nil
	}
	data, err := os.ReadFile(s.InputFile) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
