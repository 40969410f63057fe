package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RNSsanjay/agentium/internal/enhance"
	"github.com/RNSsanjay/agentium/internal/memory"
	"github.com/RNSsanjay/agentium/internal/observe"
	"github.com/RNSsanjay/agentium/internal/pipeline"
	"github.com/RNSsanjay/agentium/internal/policy"
	"github.com/RNSsanjay/agentium/internal/report"
	"github.com/RNSsanjay/agentium/internal/store"
	"github.com/RNSsanjay/agentium/internal/ui"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	tmpDir := t.TempDir()

	s, err := store.NewSQLiteStore(
		filepath.Join(tmpDir, "metadata.db"),
		filepath.Join(tmpDir, "reports"),
	)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	enforcer := policy.New(policy.DefaultPolicy)
	return &Runner{
		Observer: observe.New(os.Stdout, false),
		Store:    s,
		Enhancer: enhance.NewLocalEnhancer(),
		Enforcer: enforcer,
		Writer:   report.NewWriter(filepath.Join(tmpDir, "output"), enforcer),
		Memory:   memory.NewManager(),
		UI:       ui.SilentUI{},
	}
}

func TestRunner_Pipeline(t *testing.T) {
	r := newTestRunner(t)

	if err := r.RunPipeline(context.Background(), pipeline.SampleContent); err != nil {
		t.Fatalf("RunPipeline failed: %v", err)
	}

	runs, err := r.Store.ListRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].Kind != "pipeline" || runs[0].Status != "completed" {
		t.Errorf("run = %+v", runs[0])
	}
	if runs[0].Metadata["model"] != "local" {
		t.Errorf("model = %q", runs[0].Metadata["model"])
	}

	reports, err := r.Store.ListReports(runs[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) != 1 || reports[0].Format != "markdown" {
		t.Errorf("reports = %v", reports)
	}
}

func TestRunner_News(t *testing.T) {
	r := newTestRunner(t)

	if err := r.RunNews(context.Background()); err != nil {
		t.Fatalf("RunNews failed: %v", err)
	}

	runs, _ := r.Store.ListRuns(10)
	if len(runs) != 1 || runs[0].Kind != "news" || runs[0].Status != "completed" {
		t.Errorf("runs = %v", runs)
	}
}

func TestRunner_Dashboard(t *testing.T) {
	r := newTestRunner(t)

	if err := r.RunDashboard(context.Background(), ""); err != nil {
		t.Fatalf("RunDashboard failed: %v", err)
	}

	entries, err := os.ReadDir(r.Writer.OutputDir())
	if err != nil {
		t.Fatal(err)
	}
	// JSON dump, sales CSV and Markdown report.
	if len(entries) != 3 {
		t.Errorf("expected 3 artifacts, got %d", len(entries))
	}
}

func TestRunner_DashboardEmptyDir(t *testing.T) {
	r := newTestRunner(t)

	if err := r.RunDashboard(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error for directory without data files")
	}

	runs, _ := r.Store.ListRuns(10)
	if len(runs) != 1 || runs[0].Status != "failed" {
		t.Errorf("runs = %v", runs)
	}
}

func TestRunner_Hub(t *testing.T) {
	r := newTestRunner(t)

	if err := r.RunHub(context.Background(), ""); err != nil {
		t.Fatalf("RunHub failed: %v", err)
	}

	runs, _ := r.Store.ListRuns(10)
	if len(runs) != 1 || runs[0].Kind != "hub" || runs[0].Status != "completed" {
		t.Errorf("runs = %v", runs)
	}
}

func TestRunner_PipelineOversizedInput(t *testing.T) {
	r := newTestRunner(t)
	r.Enforcer = policy.New(policy.Policy{
		AllowedChannels: []string{"*"},
		OutputGlobs:     []string{"**"},
		MaxInputBytes:   16,
	})

	err := r.RunPipeline(context.Background(), "this input is well past sixteen bytes")
	if err == nil {
		t.Fatal("expected oversized input to be rejected")
	}
}

func TestExecuteDemo_PrintsFailure(t *testing.T) {
	r := newTestRunner(t)
	missing := filepath.Join(t.TempDir(), "missing.txt")

	var errOut bytes.Buffer
	code := executeDemo(r, func(ctx context.Context, r *Runner) error {
		return r.RunHub(ctx, missing)
	}, &errOut)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "failed to read message file") {
		t.Errorf("expected the failure to be printed, got %q", errOut.String())
	}
}

func TestExecuteDemo_PrintsDashboardFailure(t *testing.T) {
	r := newTestRunner(t)
	emptyDir := t.TempDir()

	var errOut bytes.Buffer
	code := executeDemo(r, func(ctx context.Context, r *Runner) error {
		return r.RunDashboard(ctx, emptyDir)
	}, &errOut)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "no usable data files") {
		t.Errorf("expected the failure to be printed, got %q", errOut.String())
	}
}

func TestExecuteDemo_SuccessPrintsNothing(t *testing.T) {
	r := newTestRunner(t)

	var errOut bytes.Buffer
	code := executeDemo(r, func(ctx context.Context, r *Runner) error {
		return r.RunPipeline(ctx, pipeline.SampleContent)
	}, &errOut)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output: %q", errOut.String())
	}
}

func TestLoadInput_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("plain document"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadInput(path)
	if err != nil {
		t.Fatalf("loadInput failed: %v", err)
	}
	if got != "plain document" {
		t.Errorf("loadInput = %q", got)
	}
}

func TestLoadInput_JobSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte("name: test\ninput: from the job file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadInput(path)
	if err != nil {
		t.Fatalf("loadInput failed: %v", err)
	}
	if got != "from the job file" {
		t.Errorf("loadInput = %q", got)
	}
}

func TestLoadInput_InvalidJob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	if err := os.WriteFile(path, []byte("name: no-input\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadInput(path); err == nil {
		t.Fatal("expected validation error for job without input")
	}
}

func TestCLI_CommandsRegistered(t *testing.T) {
	want := map[string]bool{
		"pipeline":  false,
		"news":      false,
		"dashboard": false,
		"hub":       false,
		"history":   false,
		"config":    false,
	}
	for _, cmd := range RootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %s not registered", name)
		}
	}
}

func TestCLI_ConfigSubcommands(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() != "config" {
			continue
		}
		if len(cmd.Commands()) < 2 {
			t.Errorf("expected set and get subcommands, got %d", len(cmd.Commands()))
		}
		return
	}
	t.Error("config command not found")
}

func TestIsSecretKey(t *testing.T) {
	cases := map[string]bool{
		"gemini.api_key":  true,
		"openai.api_key":  true,
		"slack.token":     true,
		"slack.channel":   false,
		"webhook.url":     false,
		"openai.base_url": false,
	}
	for key, want := range cases {
		if got := isSecretKey(key); got != want {
			t.Errorf("isSecretKey(%q) = %v, want %v", key, got, want)
		}
	}
}
