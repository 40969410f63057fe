package dashboard

import (
	"fmt"
	"strconv"

	"github.com/RNSsanjay/agentium/internal/report"
)

// ExportPaths lists the artifacts written by one export.
type ExportPaths struct {
	JSON     string
	CSV      string
	Markdown string
}

// Export writes the dashboard JSON dump, the sales CSV (when a sales
// source is present) and the Markdown report.
func Export(w *report.Writer, summary *Summary, sources []Source) (ExportPaths, error) {
	var paths ExportPaths

	jsonPath, err := w.WriteJSON("dashboard_data", summary)
	if err != nil {
		return paths, fmt.Errorf("exporting dashboard data: %w", err)
	}
	paths.JSON = jsonPath

	for _, src := range sources {
		if len(src.Sales) == 0 {
			continue
		}
		header := []string{"date", "product", "region", "sales", "units", "revenue"}
		rows := make([][]string, 0, len(src.Sales))
		for _, r := range src.Sales {
			rows = append(rows, []string{
				r.Date, r.Product, r.Region,
				strconv.Itoa(r.Sales), strconv.Itoa(r.Units), strconv.Itoa(r.Revenue),
			})
		}
		csvPath, err := w.WriteCSV("sales_data", header, rows)
		if err != nil {
			return paths, fmt.Errorf("exporting sales data: %w", err)
		}
		paths.CSV = csvPath
		break
	}

	md, err := GenerateReport(summary)
	if err != nil {
		return paths, fmt.Errorf("rendering dashboard report: %w", err)
	}
	mdPath, err := w.WriteMarkdown("dashboard_report", md)
	if err != nil {
		return paths, fmt.Errorf("exporting dashboard report: %w", err)
	}
	paths.Markdown = mdPath

	return paths, nil
}
