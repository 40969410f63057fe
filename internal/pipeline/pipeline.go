// Package pipeline runs the content processing demo: a fixed sequence of
// extraction, condensation, optimization, insight generation and
// summarization over one document, with every intermediate stored in the
// run's memory context.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/extract"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
)

// ContentPipeline chains the five processing steps over one enhancer.
// The enhancer is chosen before the run; steps never branch between AI
// and local paths themselves.
type ContentPipeline struct {
	enhancer enhance.Enhancer
	memory   *memory.Context
	obs      *observe.Observer
	events   *EventBus
	runID    string
}

func New(enhancer enhance.Enhancer, mem *memory.Context, obs *observe.Observer, events *EventBus, runID string) *ContentPipeline {
	if events == nil {
		events = NewEventBus()
	}
	return &ContentPipeline{
		enhancer: enhancer,
		memory:   mem,
		obs:      obs,
		events:   events,
		runID:    runID,
	}
}

// Events returns the bus the pipeline publishes progress on.
func (p *ContentPipeline) Events() *EventBus {
	return p.events
}

// Process runs the full pipeline over content. Steps execute strictly in
// order; a failing step aborts the run (the enhancer's fallback layer has
// already absorbed remote failures by the time an error reaches here).
func (p *ContentPipeline) Process(ctx context.Context, content string) (*Result, error) {
	ctx, span := p.obs.StartSpan(ctx, "pipeline.process")
	defer span.End()

	result := &Result{
		OriginalContent: content,
		Metadata: Metadata{
			Timestamp: time.Now(),
			Model:     enhance.ModelName(p.enhancer),
		},
	}

	p.obs.Log().Info().
		Str("run", p.runID).
		Str("enhancer", p.enhancer.Name()).
		Int("chars", len(content)).
		Msg("starting content pipeline")

	// Step 1: data extraction
	step := p.beginStep(StepExtraction, "Extracted emails, URLs, phones and numeric data points", 0)
	extracted := extract.All(content)
	result.ExtractedData = extracted
	step.Extraction = &extracted
	p.endStep(result, step, 0)
	p.memory.Store("extracted_data", extracted)

	// Step 2: condensation
	step = p.beginStep(StepCondensation, "Condensed content while preserving key information", 1)
	condensed, err := p.enhancer.Condense(ctx, content, enhance.CondenseOptions{Ratio: 0.4})
	if err != nil {
		return nil, p.failRun(fmt.Errorf("condensation failed: %w", err))
	}
	step.Condense = condensed
	p.endStep(result, step, 1)
	p.memory.Store("condensed_content", condensed.Text)

	// Step 3: optimization
	step = p.beginStep(StepOptimization, "Enhanced readability and structure", 2)
	optimized, err := p.enhancer.Optimize(ctx, condensed.Text, enhance.OptimizeReadability)
	if err != nil {
		return nil, p.failRun(fmt.Errorf("optimization failed: %w", err))
	}
	step.Optimize = optimized
	p.endStep(result, step, 2)
	p.memory.Store("optimized_content", optimized.Text)

	// Step 4: insight generation
	step = p.beginStep(StepInsights, "Generated business insights and key takeaways", 3)
	insights, err := p.enhancer.Insights(ctx, optimized.Text, "business")
	if err != nil {
		return nil, p.failRun(fmt.Errorf("insight generation failed: %w", err))
	}
	step.Insights = insights
	result.Insights = insights.Insights
	p.endStep(result, step, 3)
	p.memory.Store("insights", insights.Insights)

	// Step 5: executive summary
	step = p.beginStep(StepSummarization, "Created executive summary", 4)
	summary, err := p.enhancer.Summarize(ctx, optimized.Text, enhance.SummaryExecutive)
	if err != nil {
		return nil, p.failRun(fmt.Errorf("summarization failed: %w", err))
	}
	step.Summary = summary
	result.FinalSummary = summary.Summary
	p.endStep(result, step, 4)

	p.memory.Store("final_results", result)

	p.events.Publish(Event{Type: EventRunComplete, RunID: p.runID})
	p.obs.Log().Info().Str("run", p.runID).Msg("content pipeline completed")

	return result, nil
}

func (p *ContentPipeline) beginStep(kind StepKind, description string, index int) StepRecord {
	p.events.PublishStep(EventStepStart, p.runID, kind, index)
	p.obs.Log().Info().Str("step", string(kind)).Msg("step started")
	return StepRecord{
		Kind:        kind,
		Description: description,
		StartedAt:   time.Now(),
	}
}

func (p *ContentPipeline) endStep(result *Result, step StepRecord, index int) {
	step.Duration = time.Since(step.StartedAt)
	result.Steps = append(result.Steps, step)
	p.events.PublishStep(EventStepEnd, p.runID, step.Kind, index)
}

func (p *ContentPipeline) failRun(err error) error {
	p.events.Publish(Event{
		Type:  EventRunError,
		RunID: p.runID,
		Data:  map[string]interface{}{"error": err.Error()},
	})
	p.obs.Log().Error().Err(err).Str("run", p.runID).Msg("content pipeline failed")
	return err
}
