package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RNSsanjay/agentium/internal/policy"
)

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	w := NewWriter(filepath.Join(t.TempDir(), "output"), policy.New(policy.DefaultPolicy))
	w.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }
	return w
}

func TestWriter_WriteJSON(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.WriteJSON("results", map[string]any{
		"url":     "https://example.com?a=1&b=2",
		"unicode": "día",
	})
	if err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	if filepath.Base(path) != "results_20250314_092653.json" {
		t.Errorf("unexpected filename: %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "  \"url\"") {
		t.Error("expected two-space indentation")
	}
	// HTML escaping must be off.
	if strings.Contains(content, `&`) {
		t.Error("ampersand was escaped")
	}
	if !strings.Contains(content, "día") {
		t.Error("non-ASCII text was not preserved")
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestWriter_WriteMarkdown(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.WriteMarkdown("report", "# Title\n\nbody\n")
	if err != nil {
		t.Fatalf("WriteMarkdown failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "# Title") {
		t.Errorf("unexpected content: %s", data)
	}
}

func TestWriter_WriteCSV(t *testing.T) {
	w := newTestWriter(t)

	path, err := w.WriteCSV("sales",
		[]string{"region", "revenue"},
		[][]string{{"North", "125000"}, {"South", "98000"}})
	if err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines, got %d: %s", len(lines), data)
	}
	if lines[0] != "region,revenue" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestWriter_PolicyBlocked(t *testing.T) {
	enforcer := policy.New(policy.Policy{OutputGlobs: []string{"allowed/**"}})
	w := NewWriter("blocked", enforcer)

	if _, err := w.WriteMarkdown("report", "content"); err == nil {
		t.Error("expected policy violation for disallowed output dir")
	}
}

func TestRenderMarkdown(t *testing.T) {
	tmpl := `# {{ .Title }}

{{ range .Items }}- {{ . }}
{{ end }}
Steps: {{ join .Steps ", " }}
Kind: {{ title .Kind }}`

	out, err := RenderMarkdown(tmpl, map[string]any{
		"Title": "Processing Report",
		"Items": []string{"first", "second"},
		"Steps": []string{"extract", "condense"},
		"Kind":  "data_extraction",
	})
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}

	for _, want := range []string{
		"# Processing Report",
		"- first",
		"Steps: extract, condense",
		"Kind: Data Extraction",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown_BadTemplate(t *testing.T) {
	if _, err := RenderMarkdown("{{ .Unclosed", nil); err == nil {
		t.Error("expected parse error")
	}
}
