// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a log of conversions in a SQLite database and
// answers queries over it.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gehan/audioconv/pkg/types"
)

const defaultMaxResults = 20

// Store manages the conversion history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Path, creating the
// schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT,
			format TEXT NOT NULL,
			preset TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_status ON conversions(status)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_format ON conversions(format)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Record appends one conversion record. It implements convert.Recorder.
func (s *Store) Record(rec types.Record) error {
	created := rec.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO conversions (input, output, format, preset, status, error, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Input, rec.Output, rec.Format, rec.Preset, string(rec.Status), rec.Error,
		rec.Duration.Milliseconds(), created.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// QueryOptions filter a history query.
type QueryOptions struct {
	// Status restricts results to one conversion status; empty means all.
	Status types.ConversionStatus

	// Format restricts results to one target format; empty means all.
	Format string

	// Limit caps the number of results; 0 uses the store default.
	Limit int
}

// Recent returns the most recent conversion records, newest first.
func (s *Store) Recent(ctx context.Context, opts QueryOptions) ([]types.Record, error) {
	var conds []string
	var args []any
	if opts.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(opts.Status))
	}
	if opts.Format != "" {
		conds = append(conds, "format = ?")
		args = append(args, strings.ToLower(opts.Format))
	}

	query := `SELECT id, input, output, format, preset, status, error, duration_ms, created_at
	          FROM conversions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC LIMIT ?"

	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Counts returns the number of records per conversion status.
func (s *Store) Counts(ctx context.Context) (map[types.ConversionStatus]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM conversions GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("counting conversions: %w", err)
	}
	defer rows.Close()

	counts := make(map[types.ConversionStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[types.ConversionStatus(status)] = n
	}
	return counts, rows.Err()
}

func scanRecord(rows *sql.Rows) (types.Record, error) {
	var rec types.Record
	var status, created string
	var durationMS int64
	if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &rec.Format, &rec.Preset,
		&status, &rec.Error, &durationMS, &created); err != nil {
		return rec, fmt.Errorf("scanning record: %w", err)
	}
	rec.Status = types.ConversionStatus(status)
	rec.Duration = time.Duration(durationMS) * time.Millisecond

	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return rec, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	rec.CreatedAt = t
	return rec, nil
}
