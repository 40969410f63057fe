// Package report writes run artifacts (JSON dumps, Markdown reports, CSV
// exports) into a timestamp-named file per artifact under the output
// directory.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/RNSsanjay/agentium/internal/policy"
)

// Writer lands artifacts in outputDir. Every target path is checked
// against the policy before anything is written.
type Writer struct {
	outputDir string
	enforcer  *policy.Enforcer
	now       func() time.Time
}

func NewWriter(outputDir string, enforcer *policy.Enforcer) *Writer {
	return &Writer{
		outputDir: outputDir,
		enforcer:  enforcer,
		now:       time.Now,
	}
}

// OutputDir returns the directory artifacts are written to.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

func (w *Writer) target(name, ext string) (string, error) {
	stamp := w.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", name, stamp, ext)
	full := filepath.Join(w.outputDir, filename)

	if v := w.enforcer.CheckOutputPath(filepath.ToSlash(full)); v != nil {
		return "", fmt.Errorf("policy violation (%s): %s", v.Rule, v.Message)
	}
	if err := os.MkdirAll(w.outputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return full, nil
}

// WriteJSON serializes v with two-space indentation. HTML escaping is off
// so URLs and non-ASCII text survive verbatim.
func (w *Writer) WriteJSON(name string, v any) (string, error) {
	path, err := w.target(name, "json")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %w", err)
	}
	return path, nil
}

// WriteMarkdown writes a rendered Markdown document.
func (w *Writer) WriteMarkdown(name, content string) (string, error) {
	path, err := w.target(name, "md")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// WriteCSV writes a header row followed by data rows.
func (w *Writer) WriteCSV(name string, header []string, rows [][]string) (string, error) {
	path, err := w.target(name, "csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write CSV rows: %w", err)
	}
	cw.Flush()
	return path, cw.Error()
}
