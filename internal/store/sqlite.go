package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db        *sql.DB
	reportDir string
}

func NewSQLiteStore(dbPath, reportDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}
	if err := os.MkdirAll(reportDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{
		db:        db,
		reportDir: reportDir,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			kind TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			status TEXT,
			metadata TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			run_id TEXT,
			path TEXT,
			format TEXT,
			created_at DATETIME,
			FOREIGN KEY(run_id) REFERENCES runs(id)
		);`,
		`CREATE TABLE IF NOT EXISTS configuration (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Configuration Implementation

func (s *SQLiteStore) SetConfig(key, value string) error {
	query := `INSERT INTO configuration (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := s.db.Exec(query, key, value)
	return err
}

// GetConfig returns the stored value, or empty string when unset.
func (s *SQLiteStore) GetConfig(key string) (string, error) {
	query := `SELECT value FROM configuration WHERE key = ?`
	row := s.db.QueryRow(query, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// Run Implementation

func (s *SQLiteStore) CreateRun(run *Run) error {
	metaJSON, err := json.Marshal(run.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `INSERT INTO runs (id, kind, created_at, updated_at, status, metadata) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = s.db.Exec(query, run.ID, run.Kind, run.CreatedAt, run.UpdatedAt, run.Status, string(metaJSON))
	return err
}

func (s *SQLiteStore) GetRun(id string) (*Run, error) {
	query := `SELECT id, kind, created_at, updated_at, status, metadata FROM runs WHERE id = ?`
	row := s.db.QueryRow(query, id)

	var run Run
	var metaJSON string
	if err := row.Scan(&run.ID, &run.Kind, &run.CreatedAt, &run.UpdatedAt, &run.Status, &metaJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("run not found: %s", id)
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(metaJSON), &run.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	return &run, nil
}

func (s *SQLiteStore) UpdateRun(run *Run) error {
	metaJSON, err := json.Marshal(run.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	query := `UPDATE runs SET updated_at = ?, status = ?, metadata = ? WHERE id = ?`
	_, err = s.db.Exec(query, time.Now(), run.Status, string(metaJSON), run.ID)
	return err
}

func (s *SQLiteStore) ListRuns(limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, kind, created_at, updated_at, status, metadata FROM runs ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		var metaJSON string
		if err := rows.Scan(&run.ID, &run.Kind, &run.CreatedAt, &run.UpdatedAt, &run.Status, &metaJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(metaJSON), &run.Metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// Report Implementation

func (s *SQLiteStore) SaveReport(report *Report, content []byte) error {
	fullPath := filepath.Join(s.reportDir, report.Path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0750); err != nil {
		return fmt.Errorf("failed to create report dir: %w", err)
	}
	if err := os.WriteFile(fullPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write report content: %w", err)
	}

	query := `INSERT INTO reports (id, run_id, path, format, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := s.db.Exec(query, report.ID, report.RunID, report.Path, report.Format, report.CreatedAt)
	return err
}

func (s *SQLiteStore) GetReport(id string) (*Report, []byte, error) {
	query := `SELECT id, run_id, path, format, created_at FROM reports WHERE id = ?`
	row := s.db.QueryRow(query, id)

	var report Report
	if err := row.Scan(&report.ID, &report.RunID, &report.Path, &report.Format, &report.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, fmt.Errorf("report not found: %s", id)
		}
		return nil, nil, err
	}

	fullPath := filepath.Join(s.reportDir, report.Path)
	content, err := os.ReadFile(fullPath) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read report content: %w", err)
	}

	return &report, content, nil
}

func (s *SQLiteStore) ListReports(runID string) ([]*Report, error) {
	query := `SELECT id, run_id, path, format, created_at FROM reports WHERE run_id = ?`
	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*Report
	for rows.Next() {
		var r Report
		if err := rows.Scan(&r.ID, &r.RunID, &r.Path, &r.Format, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, &r)
	}
	return reports, rows.Err()
}
