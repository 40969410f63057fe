package dashboard

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable builds the console summary table for a dashboard run.
func RenderTable(summary *Summary, sources []Source) string {
	sizes := make(map[string]int, len(sources))
	for _, src := range sources {
		sizes[src.Name] = src.Size
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Type", "Data Points", "Insights", "Recommendations"})
	for _, a := range summary.Analyses {
		t.AppendRow(table.Row{
			a.Source,
			string(a.Type),
			sizes[a.Source],
			len(a.KeyInsights),
			len(a.Recommendations),
		})
	}
	t.AppendFooter(table.Row{
		"total", "",
		summary.Stats.TotalDataPoints,
		summary.Stats.Insights,
		summary.Stats.Recommendations,
	})
	return t.Render()
}
