// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records past car searches in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jeranaias/carscout-tui/internal/interpret"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("history store is closed")

// =============================================================================
// ENTRY
// =============================================================================

// Entry is one recorded search.
type Entry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Query       string    `json:"query"`
	Make        string    `json:"make,omitempty"`
	Model       string    `json:"model,omitempty"`
	Year        string    `json:"year,omitempty"`
	Price       string    `json:"price,omitempty"`
	URL         string    `json:"url,omitempty"`
	SourceCount int       `json:"source_count"`
}

// =============================================================================
// STORE
// =============================================================================

// Store persists search history. A nil *Store is valid and inert.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS searches (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	ts           INTEGER NOT NULL,
	query        TEXT NOT NULL,
	make         TEXT NOT NULL DEFAULT '',
	model        TEXT NOT NULL DEFAULT '',
	year         TEXT NOT NULL DEFAULT '',
	price        TEXT NOT NULL DEFAULT '',
	url          TEXT NOT NULL DEFAULT '',
	source_count INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_searches_ts ON searches(ts DESC);
`

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Record stores one completed search. Safe on a nil store (no-op).
func (s *Store) Record(ctx context.Context, query string, resp interpret.NormalizedResponse) error {
	if s == nil {
		return nil
	}
	if s.db == nil {
		return ErrClosed
	}

	var d interpret.ListingDetails
	if resp.Details != nil {
		d = *resp.Details
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (ts, query, make, model, year, price, url, source_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), query, d.Make, d.Model, d.Year, d.Price, d.URL, len(resp.Sources),
	)
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first. Safe on a nil store.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ts, query, make, model, year, price, url, source_count
		 FROM searches ORDER BY ts DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &ts, &e.Query, &e.Make, &e.Model, &e.Year, &e.Price, &e.URL, &e.SourceCount); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Timestamp = time.Unix(ts, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the total number of recorded searches. Safe on a nil store.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s == nil {
		return 0, nil
	}
	if s.db == nil {
		return 0, ErrClosed
	}
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM searches`).Scan(&n)
	return n, err
}

// Clear deletes all recorded searches. Safe on a nil store.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil {
		return nil
	}
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	return err
}
