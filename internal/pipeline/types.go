package pipeline

import (
	"time"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/extract"
)

// StepKind tags a pipeline step record. Steps always execute in the
// order the constants are declared; no step is retried or reordered.
type StepKind string

const (
	StepExtraction    StepKind = "data_extraction"
	StepCondensation  StepKind = "condensation"
	StepOptimization  StepKind = "optimization"
	StepInsights      StepKind = "insight_generation"
	StepSummarization StepKind = "summarization"
)

// NumSteps is the fixed number of steps in a content pipeline run.
const NumSteps = 5

// StepRecord is one executed step. Exactly one payload pointer matching
// Kind is non-nil; the rest stay nil.
type StepRecord struct {
	Kind        StepKind      `json:"step"`
	Description string        `json:"description"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration_ns"`

	Extraction *extract.StructuredData `json:"extraction,omitempty"`
	Condense   *enhance.CondenseResult `json:"condense,omitempty"`
	Optimize   *enhance.OptimizeResult `json:"optimize,omitempty"`
	Insights   *enhance.InsightResult  `json:"insights,omitempty"`
	Summary    *enhance.SummaryResult  `json:"summary,omitempty"`
}

// Metadata records when a run happened and which model served it.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Model     string    `json:"model_used"`
}

// Result is the full outcome of a content pipeline run. Steps appear in
// execution order.
type Result struct {
	OriginalContent string                 `json:"original_content"`
	Steps           []StepRecord           `json:"processing_steps"`
	FinalSummary    string                 `json:"final_summary"`
	ExtractedData   extract.StructuredData `json:"extracted_data"`
	Insights        []string               `json:"insights"`
	Metadata        Metadata               `json:"metadata"`
}
