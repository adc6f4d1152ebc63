// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a journal of completed conversions in a local
// SQLite database.
// Implements: prd003-history (R1-R4).
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/textcase/pkg/types"
)

const dbFile = "textcase.db"

// Entry is one journal row: a conversion that ran to commit.
type Entry struct {
	ID          int64          `json:"id" yaml:"id"`
	Path        string         `json:"path" yaml:"path"`
	Mode        types.CaseMode `json:"mode" yaml:"mode"`
	Lines       int            `json:"lines" yaml:"lines"`
	Bytes       int64          `json:"bytes" yaml:"bytes"`
	Duration    time.Duration  `json:"duration" yaml:"duration"`
	ConvertedAt time.Time      `json:"converted_at" yaml:"converted_at"`
}

// Store manages the journal database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// Open opens or creates the journal database at cfg.Dir/textcase.db,
// creating the directory and schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
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
	const stmt = `CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		mode TEXT NOT NULL,
		lines INTEGER NOT NULL,
		bytes INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		converted_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends one entry to the journal. The entry's ID is ignored; the
// database assigns it.
func (s *Store) Record(ctx context.Context, e Entry) error {
	when := e.ConvertedAt
	if when.IsZero() {
		when = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (path, mode, lines, bytes, duration_ms, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Path, string(e.Mode), e.Lines, e.Bytes, e.Duration.Milliseconds(),
		when.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first. A limit of 0 uses the
// store's configured maximum.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, path, mode, lines, bytes, duration_ms, converted_at
		 FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			mode       string
			durationMS int64
			when       string
		)
		if err := rows.Scan(&e.ID, &e.Path, &mode, &e.Lines, &e.Bytes, &durationMS, &when); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.Mode = types.CaseMode(mode)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		if t, perr := time.Parse(time.RFC3339Nano, when); perr == nil {
			e.ConvertedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes all journal entries and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clearing journal: %w", err)
	}
	return res.RowsAffected()
}
