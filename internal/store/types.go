package store

import "time"

// Run represents one execution of a demo pipeline.
type Run struct {
	ID        string
	Kind      string // pipeline, news, dashboard, hub
	CreatedAt time.Time
	UpdatedAt time.Time
	Status    string
	Metadata  map[string]string
}

// Report represents an exported artifact (JSON dump, Markdown report, CSV).
type Report struct {
	ID        string
	RunID     string
	Path      string // relative path in the report store
	Format    string // json, markdown, csv
	CreatedAt time.Time
}

// Storage defines the persistence interface behind run history and config.
type Storage interface {
	// Run management
	CreateRun(run *Run) error
	GetRun(id string) (*Run, error)
	UpdateRun(run *Run) error
	ListRuns(limit int) ([]*Run, error)

	// Report management; SaveReport persists metadata and content
	SaveReport(report *Report, content []byte) error
	GetReport(id string) (*Report, []byte, error)
	ListReports(runID string) ([]*Report, error)

	// Configuration management
	SetConfig(key, value string) error
	GetConfig(key string) (string, error)

	Close() error
}
