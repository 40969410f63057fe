package hub

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/slack-go/slack"
)

// Message is one notification as delivered to a channel. Body already
// carries the channel-specific variant of the content.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"message"`
}

// Channel delivers a message to one destination. Implementations must be
// safe for sequential reuse across a distribution run.
type Channel interface {
	Send(ctx context.Context, msg Message) error
	Name() string
}

// ConsoleChannel prints the message to a writer, normally stdout.
type ConsoleChannel struct {
	Out io.Writer
}

func NewConsoleChannel(out io.Writer) *ConsoleChannel {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleChannel{Out: out}
}

func (c *ConsoleChannel) Name() string { return "console" }

func (c *ConsoleChannel) Send(_ context.Context, msg Message) error {
	_, err := fmt.Fprintf(c.Out, "=== %s ===\n%s\n", msg.Title, msg.Body)
	return err
}

// FileChannel appends each message to a timestamped notification file in
// a directory.
type FileChannel struct {
	Dir string

	now func() time.Time
}

func NewFileChannel(dir string) *FileChannel {
	return &FileChannel{Dir: dir, now: time.Now}
}

func (c *FileChannel) Name() string { return "file" }

func (c *FileChannel) Send(_ context.Context, msg Message) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating notification dir: %w", err)
	}
	ts := c.now()
	path := filepath.Join(c.Dir, fmt.Sprintf("notification_%s.txt", ts.Format("20060102_150405")))
	content := fmt.Sprintf("%s\n%s\n\n%s\n", msg.Title, ts.Format(time.RFC3339), msg.Body)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing notification file: %w", err)
	}
	return nil
}

// SlackChannel posts to a Slack channel through the Web API.
type SlackChannel struct {
	client    *slack.Client
	channelID string
}

func NewSlackChannel(token, channelID string) *SlackChannel {
	return &SlackChannel{
		client:    slack.New(token),
		channelID: channelID,
	}
}

func (c *SlackChannel) Name() string { return "slack" }

func (c *SlackChannel) Send(ctx context.Context, msg Message) error {
	_, _, err := c.client.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionText(fmt.Sprintf("*%s*\n%s", msg.Title, msg.Body), false),
	)
	if err != nil {
		return fmt.Errorf("posting to slack: %w", err)
	}
	return nil
}

// WebhookChannel POSTs the message as JSON to an HTTP endpoint.
type WebhookChannel struct {
	client *resty.Client
	url    string
}

func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{
		client: resty.New().SetTimeout(30 * time.Second),
		url:    url,
	}
}

func (c *WebhookChannel) Name() string { return "webhook" }

func (c *WebhookChannel) Send(ctx context.Context, msg Message) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(msg).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook returned %s", resp.Status())
	}
	return nil
}
