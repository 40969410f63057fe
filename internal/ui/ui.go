package ui

import (
	"fmt"

	"github.com/RNSsanjay/agentium/internal/pipeline"
)

type UI interface {
	UpdateStatus(status string)
	UpdateStep(step, total int)
	Log(msg string)
}

type SilentUI struct{}

func (s SilentUI) UpdateStatus(status string) {}
func (s SilentUI) UpdateStep(step, total int) {}
func (s SilentUI) Log(msg string)             {}

// Attach subscribes a UI to pipeline events so step progress and run
// completion show up without the pipeline knowing about the UI.
func Attach(bus *pipeline.EventBus, u UI) {
	bus.Subscribe(pipeline.EventStepStart, func(e pipeline.Event) {
		step, _ := e.Data["step"].(string)
		index, _ := e.Data["index"].(int)
		u.UpdateStep(index+1, pipeline.NumSteps)
		u.UpdateStatus(fmt.Sprintf("Running %s", step))
		u.Log(fmt.Sprintf("step %d/%d: %s started", index+1, pipeline.NumSteps, step))
	})
	bus.Subscribe(pipeline.EventStepEnd, func(e pipeline.Event) {
		step, _ := e.Data["step"].(string)
		u.Log(fmt.Sprintf("%s finished", step))
	})
	bus.Subscribe(pipeline.EventRunComplete, func(e pipeline.Event) {
		u.UpdateStep(pipeline.NumSteps, pipeline.NumSteps)
		u.UpdateStatus("Run complete")
		u.Log("run complete")
	})
	bus.Subscribe(pipeline.EventRunError, func(e pipeline.Event) {
		u.UpdateStatus("Run failed")
		if msg, ok := e.Data["error"].(string); ok {
			u.Log("run failed: " + msg)
		}
	})
}
