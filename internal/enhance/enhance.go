// Package enhance provides the text-processing capability behind every
// pipeline step. The Enhancer interface has interchangeable backends: the
// AI-backed generators (Gemini, OpenAI, Ollama) and a deterministic local
// heuristic. A backend is selected once per run; callers never branch
// between AI and local paths themselves.
package enhance

import (
	"context"
	"errors"
)

// OptimizeKind selects the optimization style.
type OptimizeKind string

const (
	OptimizeReadability  OptimizeKind = "readability"
	OptimizeProfessional OptimizeKind = "professional"
	OptimizeText         OptimizeKind = "text"
)

// SummaryStrategy selects how a summary is shaped.
type SummaryStrategy string

const (
	SummaryExtractive SummaryStrategy = "extractive"
	SummaryExecutive  SummaryStrategy = "executive"
	SummaryBullet     SummaryStrategy = "bullet"
)

// CondenseOptions controls how aggressively text is shortened.
// TargetLength wins when set; otherwise Ratio applies (default 0.4).
type CondenseOptions struct {
	TargetLength int
	Ratio        float64
}

type CondenseResult struct {
	Text            string `json:"text"`
	OriginalLength  int    `json:"original_length"`
	CondensedLength int    `json:"condensed_length"`
}

type OptimizeResult struct {
	Text         string   `json:"text"`
	Improvements []string `json:"improvements"`
}

type SummaryResult struct {
	Summary  string          `json:"summary"`
	Strategy SummaryStrategy `json:"strategy"`
}

type InsightResult struct {
	Insights []string `json:"insights"`
	Focus    string   `json:"focus"`
}

// TranslateOptions names the language pair. Tone is advisory and only
// honored by generative backends.
type TranslateOptions struct {
	Source string
	Target string
	Tone   string
}

type TranslateResult struct {
	TranslatedText string `json:"translated_text"`
	Source         string `json:"source"`
	Target         string `json:"target"`
}

// ErrNoGenerative is returned by Generate on backends without a generative
// model. Callers are expected to have a non-AI fallback for these calls.
var ErrNoGenerative = errors.New("enhancer has no generative backend")

// Enhancer performs one discrete text transformation per method. All
// methods are synchronous; generative backends bound every call with a
// timeout and honor context cancellation. There is no retry: a failed
// call is either surfaced or downgraded to the local path by Fallback.
type Enhancer interface {
	Condense(ctx context.Context, text string, opts CondenseOptions) (*CondenseResult, error)
	Optimize(ctx context.Context, text string, kind OptimizeKind) (*OptimizeResult, error)
	Summarize(ctx context.Context, text string, strategy SummaryStrategy) (*SummaryResult, error)
	Insights(ctx context.Context, text, focus string) (*InsightResult, error)
	Translate(ctx context.Context, text string, opts TranslateOptions) (*TranslateResult, error)
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
