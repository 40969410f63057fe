// Package policy enforces the limits a demo run operates under: which
// notification channels may be used, where exported files may land, and
// how large an input document may be.
package policy

import (
	"github.com/bmatcuk/doublestar/v4"
)

// Policy defines the limits and scopes for a run.
type Policy struct {
	AllowedChannels []string `json:"allowed_channels" yaml:"allowed_channels"`
	OutputGlobs     []string `json:"output_globs" yaml:"output_globs"`
	MaxInputBytes   int      `json:"max_input_bytes" yaml:"max_input_bytes"`
}

// Violation represents a specific breach of policy.
type Violation struct {
	Rule    string
	Message string
}

// Enforcer checks run actions against a Policy.
type Enforcer struct {
	policy Policy
}

func New(p Policy) *Enforcer {
	return &Enforcer{policy: p}
}

// Policy returns the enforcer's current configuration.
func (e *Enforcer) Policy() Policy {
	return e.policy
}

// CheckChannel verifies a notification channel is allowed.
func (e *Enforcer) CheckChannel(name string) *Violation {
	for _, allow := range e.policy.AllowedChannels {
		if allow == "*" || allow == name {
			return nil
		}
	}
	return &Violation{Rule: "allowed_channels", Message: "channel not allowed: " + name}
}

// CheckOutputPath verifies an export path matches an allowed glob.
func (e *Enforcer) CheckOutputPath(path string) *Violation {
	for _, pattern := range e.policy.OutputGlobs {
		match, err := doublestar.Match(pattern, path)
		if err == nil && match {
			return nil
		}
	}
	return &Violation{Rule: "output_globs", Message: "output path not allowed: " + path}
}

// CheckInputSize verifies an input document is within budget.
func (e *Enforcer) CheckInputSize(n int) *Violation {
	if e.policy.MaxInputBytes > 0 && n > e.policy.MaxInputBytes {
		return &Violation{Rule: "max_input_bytes", Message: "input document exceeds size limit"}
	}
	return nil
}

// DefaultPolicy provides permissive demo defaults.
var DefaultPolicy = Policy{
	AllowedChannels: []string{"*"},
	OutputGlobs:     []string{"**"},
	MaxInputBytes:   1 << 20,
}
