// Package hub implements the smart communication hub demo: one message
// is optimized, shaped per channel, distributed to every configured
// channel and recorded in the hub's memory context.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/extract"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
	"github.com/RNSsanjay/agentium/internal/policy"
)

// DeliveryResult records the outcome of one channel send.
type DeliveryResult struct {
	Channel string `json:"channel"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Record is the stored history of one distribution run.
type Record struct {
	OriginalMessage  string            `json:"original_message"`
	OptimizedMessage string            `json:"optimized_message"`
	ChannelMessages  map[string]string `json:"channel_messages"`
	Results          []DeliveryResult  `json:"distribution_results"`
	ExtractedEmails  []string          `json:"extracted_data"`
	Timestamp        time.Time         `json:"timestamp"`
	Channels         []string          `json:"channels_targeted"`
	SuccessCount     int               `json:"success_count"`
}

// Hub distributes AI-shaped messages across notification channels.
type Hub struct {
	enhancer enhance.Enhancer
	memory   *memory.Context
	obs      *observe.Observer
	enforcer *policy.Enforcer
	channels map[string]Channel
	order    []string

	now func() time.Time
}

func New(enhancer enhance.Enhancer, mem *memory.Context, obs *observe.Observer, enforcer *policy.Enforcer) *Hub {
	return &Hub{
		enhancer: enhancer,
		memory:   mem,
		obs:      obs,
		enforcer: enforcer,
		channels: make(map[string]Channel),
		now:      time.Now,
	}
}

// Register adds a channel. Registration order is delivery order.
func (h *Hub) Register(ch Channel) {
	name := ch.Name()
	if _, ok := h.channels[name]; !ok {
		h.order = append(h.order, name)
	}
	h.channels[name] = ch
}

// ChannelNames returns the registered channels in delivery order.
func (h *Hub) ChannelNames() []string {
	return append([]string(nil), h.order...)
}

// Distribute optimizes a message, shapes a variant per channel and sends
// to every registered channel. A failing channel is recorded and never
// aborts delivery to the rest.
func (h *Hub) Distribute(ctx context.Context, title, content string) (*Record, error) {
	ctx, span := h.obs.StartSpan(ctx, "hub.distribute")
	defer span.End()

	if v := h.enforcer.CheckInputSize(len(content)); v != nil {
		return nil, fmt.Errorf("message rejected: %s", v.Message)
	}

	h.obs.Log().Info().
		Int("channels", len(h.order)).
		Msg("distributing message")

	record := &Record{
		OriginalMessage: content,
		Timestamp:       h.now(),
		Channels:        h.ChannelNames(),
		ChannelMessages: make(map[string]string),
		ExtractedEmails: extract.Extract(content, extract.KindEmails),
	}

	optimized, err := h.enhancer.Optimize(ctx, content, enhance.OptimizeProfessional)
	if err != nil {
		return nil, fmt.Errorf("message optimization failed: %w", err)
	}
	record.OptimizedMessage = optimized.Text

	for _, name := range h.order {
		variant, err := h.channelVariant(ctx, name, record.OptimizedMessage)
		if err != nil {
			h.obs.Log().Warn().
				Str("channel", name).
				Err(err).
				Msg("variant shaping failed, using optimized message")
			variant = record.OptimizedMessage
		}
		record.ChannelMessages[name] = variant
	}

	for _, name := range h.order {
		result := DeliveryResult{Channel: name}
		if v := h.enforcer.CheckChannel(name); v != nil {
			result.Error = v.Message
		} else if err := h.channels[name].Send(ctx, Message{Title: title, Body: record.ChannelMessages[name]}); err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
			record.SuccessCount++
		}
		if result.Error != "" {
			h.obs.Log().Warn().
				Str("channel", name).
				Str("error", result.Error).
				Msg("delivery failed")
		} else {
			h.obs.Log().Info().
				Str("channel", name).
				Msg("delivered")
		}
		record.Results = append(record.Results, result)
	}

	key := fmt.Sprintf("communication_%s", record.Timestamp.Format("150405"))
	h.memory.Store(key, record)

	return record, nil
}

// channelVariant shapes the optimized message for one channel: email gets
// an extra professional pass, slack gets a condensed version, everything
// else takes the optimized text as-is.
func (h *Hub) channelVariant(ctx context.Context, channel, optimized string) (string, error) {
	switch channel {
	case "email":
		out, err := h.enhancer.Optimize(ctx, optimized, enhance.OptimizeProfessional)
		if err != nil {
			return "", err
		}
		return out.Text, nil
	case "slack":
		out, err := h.enhancer.Condense(ctx, optimized, enhance.CondenseOptions{TargetLength: 500})
		if err != nil {
			return "", err
		}
		return out.Text, nil
	default:
		return optimized, nil
	}
}

// WorkflowNotification builds a status update for a completed workflow.
// With a generative backend the text is drafted by the model; otherwise a
// plain template is used.
func (h *Hub) WorkflowNotification(ctx context.Context, workflow, status string, details map[string]any) string {
	detailJSON, _ := json.MarshalIndent(details, "", "  ")

	prompt := fmt.Sprintf(`Create a professional status update for workflow: %s
Status: %s
Details: %s

Make it informative and actionable.`, workflow, status, detailJSON)

	if out, err := h.enhancer.Generate(ctx, prompt); err == nil && strings.TrimSpace(out) != "" {
		return strings.TrimSpace(out)
	}

	return fmt.Sprintf(`Workflow Update: %s
Status: %s

Details:
%s

Timestamp: %s`, workflow, status, detailJSON, h.now().Format(time.RFC3339))
}
