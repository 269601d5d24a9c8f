// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runlog persists split run summaries to a SQLite database so past
// runs can be listed and compared.
package runlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/pdfsplit/pkg/types"
)

const dbFile = "splits.db"

// Store manages the run log SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the run log database at dir/splits.db, creating
// the schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating run log directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening run log: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			started_at TEXT NOT NULL,
			min_level INTEGER NOT NULL,
			max_level INTEGER NOT NULL,
			written INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS units (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			path TEXT NOT NULL,
			title TEXT,
			start_page INTEGER NOT NULL,
			end_page INTEGER NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_units_run_id ON units(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record persists a run and its units, returning the assigned run ID.
func (s *Store) Record(ctx context.Context, run types.RunRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (input, output_dir, started_at, min_level, max_level, written, failed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Input, run.OutputDir, run.StartedAt.UTC().Format(time.RFC3339),
		run.MinLevel, run.MaxLevel, run.Written, run.Failed)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, u := range run.Units {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO units (run_id, path, title, start_page, end_page, status, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, u.Path, u.Title, u.StartPage, u.EndPage, string(u.Status), u.Error); err != nil {
			return 0, fmt.Errorf("inserting unit %s: %w", u.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first, without their units.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input, output_dir, started_at, min_level, max_level, written, failed
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.RunRecord
	for rows.Next() {
		var r types.RunRecord
		var started string
		if err := rows.Scan(&r.ID, &r.Input, &r.OutputDir, &started,
			&r.MinLevel, &r.MaxLevel, &r.Written, &r.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = ts
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Units returns the unit records of one run in insertion order.
func (s *Store) Units(ctx context.Context, runID int64) ([]types.UnitRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, title, start_page, end_page, status, error
		 FROM units WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying units: %w", err)
	}
	defer rows.Close()

	var units []types.UnitRecord
	for rows.Next() {
		var u types.UnitRecord
		var status string
		if err := rows.Scan(&u.Path, &u.Title, &u.StartPage, &u.EndPage, &status, &u.Error); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		u.Status = types.UnitStatus(status)
		units = append(units, u)
	}
	return units, rows.Err()
}
