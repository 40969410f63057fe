package hub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
	"github.com/RNSsanjay/agentium/internal/policy"
)

func newTestHub(t *testing.T) (*Hub, *memory.Context, *bytes.Buffer) {
	t.Helper()
	mem := memory.NewManager().Context("communication_hub")
	logBuf := &bytes.Buffer{}
	obs := observe.New(logBuf, false)
	h := New(enhance.NewLocalEnhancer(), mem, obs, policy.New(policy.DefaultPolicy))
	return h, mem, logBuf
}

type failingChannel struct{}

func (failingChannel) Name() string                        { return "broken" }
func (failingChannel) Send(context.Context, Message) error { return errors.New("unreachable") }

func TestHub_Distribute(t *testing.T) {
	h, mem, _ := newTestHub(t)

	console := &bytes.Buffer{}
	h.Register(NewConsoleChannel(console))
	h.Register(NewFileChannel(t.TempDir()))

	record, err := h.Distribute(context.Background(), "Maintenance Notice", SampleMessage)
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}

	if record.SuccessCount != 2 {
		t.Errorf("success count = %d, want 2", record.SuccessCount)
	}
	if len(record.Results) != 2 {
		t.Fatalf("expected 2 delivery results, got %d", len(record.Results))
	}
	for _, r := range record.Results {
		if !r.Success {
			t.Errorf("channel %s failed: %s", r.Channel, r.Error)
		}
	}
	if record.OptimizedMessage == "" {
		t.Error("expected optimized message")
	}
	if len(record.ExtractedEmails) != 1 || record.ExtractedEmails[0] != "support@company.com" {
		t.Errorf("extracted emails = %v", record.ExtractedEmails)
	}
	if !strings.Contains(console.String(), "Maintenance Notice") {
		t.Error("console channel did not receive the title")
	}
	if mem.Len() != 1 {
		t.Errorf("expected 1 stored record, got %d", mem.Len())
	}
}

func TestHub_DistributeContinuesPastFailure(t *testing.T) {
	h, _, _ := newTestHub(t)

	h.Register(failingChannel{})
	console := &bytes.Buffer{}
	h.Register(NewConsoleChannel(console))

	record, err := h.Distribute(context.Background(), "Notice", "short message")
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}

	if record.SuccessCount != 1 {
		t.Errorf("success count = %d, want 1", record.SuccessCount)
	}
	if record.Results[0].Success || record.Results[0].Error == "" {
		t.Errorf("expected recorded failure for broken channel, got %+v", record.Results[0])
	}
	if !record.Results[1].Success {
		t.Errorf("console delivery should have proceeded, got %+v", record.Results[1])
	}
	if console.Len() == 0 {
		t.Error("console channel never received the message")
	}
}

func TestHub_PolicyBlockedChannel(t *testing.T) {
	mem := memory.NewManager().Context("communication_hub")
	obs := observe.New(&bytes.Buffer{}, false)
	enforcer := policy.New(policy.Policy{
		AllowedChannels: []string{"console"},
		OutputGlobs:     []string{"**"},
	})
	h := New(enhance.NewLocalEnhancer(), mem, obs, enforcer)

	h.Register(NewConsoleChannel(&bytes.Buffer{}))
	h.Register(NewFileChannel(t.TempDir()))

	record, err := h.Distribute(context.Background(), "Notice", "message")
	if err != nil {
		t.Fatalf("Distribute failed: %v", err)
	}

	if record.SuccessCount != 1 {
		t.Errorf("success count = %d, want 1", record.SuccessCount)
	}
	var fileResult *DeliveryResult
	for i := range record.Results {
		if record.Results[i].Channel == "file" {
			fileResult = &record.Results[i]
		}
	}
	if fileResult == nil || fileResult.Success {
		t.Fatalf("expected blocked file delivery, got %+v", fileResult)
	}
	if !strings.Contains(fileResult.Error, "not allowed") {
		t.Errorf("unexpected error: %s", fileResult.Error)
	}
}

func TestHub_InputSizeRejected(t *testing.T) {
	mem := memory.NewManager().Context("communication_hub")
	obs := observe.New(&bytes.Buffer{}, false)
	enforcer := policy.New(policy.Policy{
		AllowedChannels: []string{"*"},
		OutputGlobs:     []string{"**"},
		MaxInputBytes:   10,
	})
	h := New(enhance.NewLocalEnhancer(), mem, obs, enforcer)
	h.Register(NewConsoleChannel(&bytes.Buffer{}))

	if _, err := h.Distribute(context.Background(), "Notice", strings.Repeat("x", 100)); err == nil {
		t.Fatal("expected oversized message to be rejected")
	}
}

func TestHub_ChannelVariants(t *testing.T) {
	h, _, _ := newTestHub(t)

	optimized := strings.Repeat("Sentence one is here. ", 60)

	slack, err := h.channelVariant(context.Background(), "slack", optimized)
	if err != nil {
		t.Fatalf("slack variant failed: %v", err)
	}
	if len(slack) >= len(optimized) {
		t.Errorf("slack variant should be condensed: %d >= %d", len(slack), len(optimized))
	}

	email, err := h.channelVariant(context.Background(), "email", "hello there!!")
	if err != nil {
		t.Fatalf("email variant failed: %v", err)
	}
	if strings.Contains(email, "!") {
		t.Errorf("professional email variant should drop exclamations, got %q", email)
	}

	plain, err := h.channelVariant(context.Background(), "console", optimized)
	if err != nil {
		t.Fatalf("console variant failed: %v", err)
	}
	if plain != optimized {
		t.Error("console variant should pass through")
	}
}

func TestHub_WorkflowNotificationFallback(t *testing.T) {
	h, _, _ := newTestHub(t)

	out := h.WorkflowNotification(context.Background(), "Monthly Business Analytics", "Completed Successfully", SampleWorkflowDetails())

	for _, want := range []string{
		"Workflow Update: Monthly Business Analytics",
		"Status: Completed Successfully",
		"Monthly Report Generation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("notification missing %q:\n%s", want, out)
		}
	}
}

func TestFileChannel_Send(t *testing.T) {
	dir := t.TempDir()
	ch := NewFileChannel(dir)

	if err := ch.Send(context.Background(), Message{Title: "Hello", Body: "world"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 notification file, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "notification_") {
		t.Errorf("unexpected filename %q", entries[0].Name())
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Hello") || !strings.Contains(string(data), "world") {
		t.Errorf("unexpected file content: %s", data)
	}
}

func TestWebhookChannel_Send(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding webhook body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ch := NewWebhookChannel(srv.URL)
	if err := ch.Send(context.Background(), Message{Title: "T", Body: "B"}); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if got.Title != "T" || got.Body != "B" {
		t.Errorf("server received %+v", got)
	}
}

func TestWebhookChannel_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ch := NewWebhookChannel(srv.URL)
	if err := ch.Send(context.Background(), Message{Title: "T", Body: "B"}); err == nil {
		t.Fatal("expected error on 500 response")
	}
}
