package dashboard

import (
	"github.com/RNSsanjay/agentium/internal/report"
)

const reportTemplate = `# Data Intelligence Dashboard Report

**Generated:** {{ .GeneratedAt.Format "2006-01-02 15:04:05" }}
**Data Sources:** {{ .SourceCount }}
**Model:** {{ .Model }}

## Executive Summary

This analysis covers {{ .SourceCount }} data sources, generating {{ .Stats.Insights }} insights
and {{ .Stats.Recommendations }} actionable recommendations across {{ .Stats.DataTypes }} data types.

## Data Source Analysis
{{ range .Analyses }}
### {{ title .Source }} Analysis

**Data Type:** {{ .Type }}
**Key Insights:**
{{ range .KeyInsights }}
- {{ . }}
{{- end }}
{{ if .Recommendations }}
**Recommendations:**
{{ range .Recommendations }}
- {{ . }}
{{- end }}
{{ end }}
---
{{ end }}
## Cross-Source Strategic Insights
{{ range .CrossInsights }}
- {{ . }}
{{- end }}

## Performance Metrics

- **Total Data Points Processed:** {{ .Stats.TotalDataPoints }}
- **Insights Generated:** {{ .Stats.Insights }}
- **Data Types:** {{ .Stats.DataTypes }}
- **Recommendations:** {{ .Stats.Recommendations }}

---
*Dashboard generated by the Agentium data intelligence system*
`

// GenerateReport renders the Markdown dashboard report.
func GenerateReport(summary *Summary) (string, error) {
	return report.RenderMarkdown(reportTemplate, summary)
}
