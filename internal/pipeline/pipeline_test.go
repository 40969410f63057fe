package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
)

func newTestPipeline(t *testing.T) (*ContentPipeline, *memory.Context) {
	t.Helper()
	mem := memory.NewManager().Context("content_pipeline")
	obs := observe.New(&bytes.Buffer{}, false)
	p := New(enhance.NewLocalEnhancer(), mem, obs, NewEventBus(), "run-test")
	return p, mem
}

func TestContentPipeline_Process(t *testing.T) {
	p, _ := newTestPipeline(t)

	result, err := p.Process(context.Background(), SampleContent)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(result.Steps) != NumSteps {
		t.Fatalf("expected %d steps, got %d", NumSteps, len(result.Steps))
	}

	wantOrder := []StepKind{
		StepExtraction, StepCondensation, StepOptimization, StepInsights, StepSummarization,
	}
	for i, want := range wantOrder {
		if result.Steps[i].Kind != want {
			t.Errorf("step[%d] = %s, want %s", i, result.Steps[i].Kind, want)
		}
	}

	if result.FinalSummary == "" {
		t.Error("expected non-empty final summary")
	}
	if len(result.Insights) == 0 {
		t.Error("expected insights")
	}
	if len(result.ExtractedData.Emails) == 0 {
		t.Error("expected extracted emails from sample content")
	}
	if result.Metadata.Model != "local" {
		t.Errorf("expected model 'local', got %q", result.Metadata.Model)
	}
}

func TestContentPipeline_TaggedPayloads(t *testing.T) {
	p, _ := newTestPipeline(t)

	result, err := p.Process(context.Background(), SampleContent)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	for _, step := range result.Steps {
		payloads := 0
		if step.Extraction != nil {
			payloads++
		}
		if step.Condense != nil {
			payloads++
		}
		if step.Optimize != nil {
			payloads++
		}
		if step.Insights != nil {
			payloads++
		}
		if step.Summary != nil {
			payloads++
		}
		if payloads != 1 {
			t.Errorf("step %s carries %d payloads, want exactly 1", step.Kind, payloads)
		}
	}
}

func TestContentPipeline_MemoryIntermediates(t *testing.T) {
	p, mem := newTestPipeline(t)

	if _, err := p.Process(context.Background(), SampleContent); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	wantKeys := []string{
		"extracted_data", "condensed_content", "optimized_content", "insights", "final_results",
	}
	gotKeys := mem.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("memory keys = %v, want %v", gotKeys, wantKeys)
	}
	for i, want := range wantKeys {
		if gotKeys[i] != want {
			t.Errorf("memory key[%d] = %s, want %s", i, gotKeys[i], want)
		}
	}

	if _, ok := mem.Get("condensed_content"); !ok {
		t.Error("condensed_content missing from memory")
	}
}

func TestContentPipeline_Events(t *testing.T) {
	p, _ := newTestPipeline(t)

	var starts, ends int
	var completed bool
	p.Events().Subscribe(EventStepStart, func(e Event) { starts++ })
	p.Events().Subscribe(EventStepEnd, func(e Event) { ends++ })
	p.Events().Subscribe(EventRunComplete, func(e Event) { completed = true })

	if _, err := p.Process(context.Background(), SampleContent); err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if starts != NumSteps || ends != NumSteps {
		t.Errorf("expected %d start/end events, got %d/%d", NumSteps, starts, ends)
	}
	if !completed {
		t.Error("expected run_complete event")
	}
}

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := NewEventBus()

	var seen []EventType
	bus.SubscribeAll(func(e Event) { seen = append(seen, e.Type) })

	bus.PublishStep(EventStepStart, "run", StepExtraction, 0)
	bus.Publish(Event{Type: EventRunComplete, RunID: "run"})

	if len(seen) != 2 {
		t.Fatalf("expected 2 events, got %d", len(seen))
	}
	if seen[0] != EventStepStart || seen[1] != EventRunComplete {
		t.Errorf("unexpected event order: %v", seen)
	}
}

func TestEventBus_TimestampSet(t *testing.T) {
	bus := NewEventBus()

	var got Event
	bus.Subscribe(EventRunComplete, func(e Event) { got = e })
	bus.Publish(Event{Type: EventRunComplete})

	if got.Timestamp.IsZero() {
		t.Error("expected timestamp to be set on publish")
	}
}

func TestGenerateReport(t *testing.T) {
	p, _ := newTestPipeline(t)

	result, err := p.Process(context.Background(), SampleContent)
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	md, err := GenerateReport(result)
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	for _, want := range []string{
		"# Content Processing Report",
		"## Executive Summary",
		"## Key Insights",
		"info@airevolution.com",
		"### Data Extraction",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q:\n%s", want, md)
		}
	}
}
