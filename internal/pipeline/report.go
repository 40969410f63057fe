package pipeline

import "github.com/RNSsanjay/agentium/internal/report"

const reportTemplate = `# Content Processing Report

**Generated:** {{ .Metadata.Timestamp.Format "2006-01-02 15:04:05" }}
**Model:** {{ .Metadata.Model }}

## Executive Summary

{{ .FinalSummary }}

## Key Insights
{{ range .Insights }}
- {{ . }}
{{- end }}

## Extracted Data
{{ if .ExtractedData.Emails }}
**Emails:** {{ join .ExtractedData.Emails ", " }}
{{- end }}
{{- if .ExtractedData.URLs }}
**URLs:** {{ join .ExtractedData.URLs ", " }}
{{- end }}
{{- if .ExtractedData.Phones }}
**Phones:** {{ join .ExtractedData.Phones ", " }}
{{- end }}

## Processing Steps
{{ range .Steps }}
### {{ title (printf "%s" .Kind) }}

{{ .Description }}
{{ end }}
---
*Report generated by the Agentium content pipeline*
`

// GenerateReport renders the Markdown report for a completed run.
func GenerateReport(result *Result) (string, error) {
	return report.RenderMarkdown(reportTemplate, result)
}
