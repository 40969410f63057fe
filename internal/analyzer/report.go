package analyzer

import (
	"time"

	"github.com/RNSsanjay/agentium/internal/report"
)

const reportTemplate = `# Multi-Language News Analysis Report

**Generated:** {{ .Timestamp.Format "2006-01-02 15:04:05" }}
**Articles Analyzed:** {{ len .Analyses }}
**Languages Processed:** {{ join .Languages ", " }}
**Model:** {{ .Model }}

## Article Summaries
{{ range .Analyses }}
### {{ .Article.Title }}

**Source:** {{ .Article.Source }}
**Language:** {{ .Article.Language }}
**Category:** {{ .Article.Category }}
**Sentiment:** {{ .Sentiment.Label }}

{{ .Summary }}

**Key Insights:**
{{ range .Insights }}
- {{ . }}
{{- end }}
{{ end }}
---
*Report generated by the Agentium news analyzer*
`

type reportData struct {
	Timestamp time.Time
	Analyses  []*Analysis
	Languages []string
	Model     string
}

// GenerateReport renders the aggregate Markdown report for a batch of
// analyzed articles.
func GenerateReport(analyses []*Analysis) (string, error) {
	data := reportData{
		Timestamp: time.Now(),
		Analyses:  analyses,
		Model:     "local",
	}

	seen := make(map[string]bool)
	for _, a := range analyses {
		lang := a.Article.Language
		if !seen[lang] {
			seen[lang] = true
			data.Languages = append(data.Languages, lang)
		}
		data.Model = a.Model
	}

	return report.RenderMarkdown(reportTemplate, data)
}
