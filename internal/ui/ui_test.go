package ui

import (
	"strings"
	"testing"

	"github.com/RNSsanjay/agentium/internal/pipeline"
)

func TestSilentUI_ImplementsInterface(t *testing.T) {
	var _ UI = SilentUI{}
	var _ UI = &SilentUI{}
}

func TestSilentUI_NoPanic(t *testing.T) {
	u := SilentUI{}
	u.UpdateStatus("test status")
	u.UpdateStep(1, 5)
	u.Log("test message")
	u.Log("")
}

// MockUI records every call for assertions.
type MockUI struct {
	StatusUpdates []string
	StepUpdates   [][2]int
	LogMessages   []string
}

func (m *MockUI) UpdateStatus(status string) {
	m.StatusUpdates = append(m.StatusUpdates, status)
}

func (m *MockUI) UpdateStep(step, total int) {
	m.StepUpdates = append(m.StepUpdates, [2]int{step, total})
}

func (m *MockUI) Log(msg string) {
	m.LogMessages = append(m.LogMessages, msg)
}

func TestMockUI_Records(t *testing.T) {
	u := &MockUI{}

	u.UpdateStatus("status1")
	u.UpdateStatus("status2")
	u.UpdateStep(2, 5)
	u.Log("message1")

	if len(u.StatusUpdates) != 2 || u.StatusUpdates[1] != "status2" {
		t.Errorf("status updates = %v", u.StatusUpdates)
	}
	if len(u.StepUpdates) != 1 || u.StepUpdates[0] != [2]int{2, 5} {
		t.Errorf("step updates = %v", u.StepUpdates)
	}
	if len(u.LogMessages) != 1 {
		t.Errorf("log messages = %v", u.LogMessages)
	}
}

func TestAttach_StepEvents(t *testing.T) {
	bus := pipeline.NewEventBus()
	u := &MockUI{}
	Attach(bus, u)

	bus.PublishStep(pipeline.EventStepStart, "run", pipeline.StepExtraction, 0)
	bus.PublishStep(pipeline.EventStepEnd, "run", pipeline.StepExtraction, 0)
	bus.Publish(pipeline.Event{Type: pipeline.EventRunComplete, RunID: "run"})

	if len(u.StepUpdates) != 2 {
		t.Fatalf("step updates = %v", u.StepUpdates)
	}
	if u.StepUpdates[0] != [2]int{1, pipeline.NumSteps} {
		t.Errorf("first step update = %v", u.StepUpdates[0])
	}
	if u.StepUpdates[1] != [2]int{pipeline.NumSteps, pipeline.NumSteps} {
		t.Errorf("completion step update = %v", u.StepUpdates[1])
	}

	if u.StatusUpdates[len(u.StatusUpdates)-1] != "Run complete" {
		t.Errorf("final status = %q", u.StatusUpdates[len(u.StatusUpdates)-1])
	}
	if !strings.Contains(u.LogMessages[0], "data_extraction") {
		t.Errorf("first log = %q", u.LogMessages[0])
	}
}

func TestAttach_RunError(t *testing.T) {
	bus := pipeline.NewEventBus()
	u := &MockUI{}
	Attach(bus, u)

	bus.Publish(pipeline.Event{
		Type: pipeline.EventRunError,
		Data: map[string]interface{}{"error": "condensation failed"},
	})

	if len(u.StatusUpdates) != 1 || u.StatusUpdates[0] != "Run failed" {
		t.Errorf("status updates = %v", u.StatusUpdates)
	}
	if len(u.LogMessages) != 1 || !strings.Contains(u.LogMessages[0], "condensation failed") {
		t.Errorf("log messages = %v", u.LogMessages)
	}
}
