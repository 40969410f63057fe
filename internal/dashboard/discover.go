package dashboard

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverSources scans a directory for data files and builds a source
// per file. CSV files with a sales-shaped header load as sales data,
// JSON files as feedback records, and txt/md files as text sources.
// Files that fail to parse are skipped with an error entry.
func DiscoverSources(dir string) ([]Source, []error) {
	fsys := os.DirFS(dir)

	var sources []Source
	var errs []error

	matches, err := doublestar.Glob(fsys, "**/*.{csv,json,txt,md}")
	if err != nil {
		return nil, []error{fmt.Errorf("scanning %s: %w", dir, err)}
	}

	for _, rel := range matches {
		full := filepath.Join(dir, rel)
		name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))

		var (
			src Source
			err error
		)
		switch filepath.Ext(rel) {
		case ".csv":
			src, err = loadSalesCSV(name, full)
		case ".json":
			src, err = loadFeedbackJSON(name, full)
		default:
			src, err = loadTextFile(name, full)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("loading %s: %w", rel, err))
			continue
		}
		sources = append(sources, src)
	}
	return sources, errs
}

var salesHeader = []string{"date", "product", "region", "sales", "units", "revenue"}

func loadSalesCSV(name, path string) (Source, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return Source{}, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return Source{}, err
	}
	if len(records) < 2 {
		return Source{}, fmt.Errorf("no data rows")
	}

	header := records[0]
	if len(header) != len(salesHeader) {
		return Source{}, fmt.Errorf("expected header %v, got %v", salesHeader, header)
	}
	for i, want := range salesHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return Source{}, fmt.Errorf("expected header %v, got %v", salesHeader, header)
		}
	}

	var rows []SaleRow
	for _, rec := range records[1:] {
		sales, err1 := strconv.Atoi(strings.TrimSpace(rec[3]))
		units, err2 := strconv.Atoi(strings.TrimSpace(rec[4]))
		revenue, err3 := strconv.Atoi(strings.TrimSpace(rec[5]))
		if err1 != nil || err2 != nil || err3 != nil {
			return Source{}, fmt.Errorf("non-numeric value in row %v", rec)
		}
		rows = append(rows, SaleRow{
			Date:    rec[0],
			Product: rec[1],
			Region:  rec[2],
			Sales:   sales,
			Units:   units,
			Revenue: revenue,
		})
	}

	return Source{
		Name:        name,
		Type:        SourceCSV,
		Description: "Sales data loaded from " + filepath.Base(path),
		Size:        len(rows),
		Sales:       rows,
	}, nil
}

func loadFeedbackJSON(name, path string) (Source, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return Source{}, err
	}

	var entries []FeedbackEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return Source{}, err
	}

	return Source{
		Name:        name,
		Type:        SourceJSON,
		Description: "Feedback data loaded from " + filepath.Base(path),
		Size:        len(entries),
		Feedback:    entries,
	}, nil
}

func loadTextFile(name, path string) (Source, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return Source{}, err
	}

	text := string(data)
	return Source{
		Name:        name,
		Type:        SourceText,
		Description: "Text data loaded from " + filepath.Base(path),
		Size:        len(text),
		Text:        text,
	}, nil
}
