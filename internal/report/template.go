package report

import (
	"fmt"
	"strings"
	"text/template"
)

// RenderMarkdown renders a Markdown template against data. The helper
// functions cover the needs of the built-in report templates.
func RenderMarkdown(tmpl string, data any) (string, error) {
	t, err := template.New("report").Funcs(template.FuncMap{
		"join":  strings.Join,
		"title": titleCase,
		"lower": strings.ToLower,
	}).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var sb strings.Builder
	if err := t.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return sb.String(), nil
}

// titleCase uppercases the first letter of each underscore- or
// space-separated word ("data_extraction" -> "Data Extraction").
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
