package pipeline

import (
	"sync"
	"time"
)

// EventType represents the type of pipeline event.
type EventType string

const (
	EventStepStart   EventType = "step_start"
	EventStepEnd     EventType = "step_end"
	EventRunComplete EventType = "run_complete"
	EventRunError    EventType = "run_error"
	EventExportDone  EventType = "export_done"
)

// Event represents a pipeline event with associated data.
type Event struct {
	Type      EventType
	Timestamp time.Time
	RunID     string
	Data      map[string]interface{}
}

// EventHandler is a function that handles events.
type EventHandler func(Event)

// EventBus manages event publication and subscription. It decouples the
// pipeline from the TUI and logging sinks that watch it.
type EventBus struct {
	mu          sync.RWMutex
	handlers    map[EventType][]EventHandler
	allHandlers []EventHandler
}

// NewEventBus creates a new event bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for a specific event type.
func (eb *EventBus) Subscribe(eventType EventType, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// SubscribeAll registers a handler for all event types.
func (eb *EventBus) SubscribeAll(handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.allHandlers = append(eb.allHandlers, handler)
}

// Publish sends an event to all registered handlers.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if handlers, ok := eb.handlers[event.Type]; ok {
		for _, handler := range handlers {
			handler(event)
		}
	}
	for _, handler := range eb.allHandlers {
		handler(event)
	}
}

// PublishStep is a convenience method for step progress events.
func (eb *EventBus) PublishStep(eventType EventType, runID string, step StepKind, index int) {
	eb.Publish(Event{
		Type:  eventType,
		RunID: runID,
		Data: map[string]interface{}{
			"step":  string(step),
			"index": index,
		},
	})
}
