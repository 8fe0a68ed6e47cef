// Package duckdb loads reclassification tables from DuckDB databases
// written by the upstream batch-effect analysis, as an alternative to
// the tab-delimited text table.
package duckdb

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/svpipe/batchfx/internal/reclass"
)

// Store manages a DuckDB connection holding reclassification data.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens a DuckDB database at the given path. Use an empty string
// for an in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// EnsureSchema creates the reclassifications table if absent.
func (s *Store) EnsureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS reclassifications (
		vid VARCHAR NOT NULL,
		assignment VARCHAR NOT NULL
	)`)
	return err
}

// Add appends one (VID, label) assignment.
func (s *Store) Add(vid, assignment string) error {
	_, err := s.db.Exec(`INSERT INTO reclassifications (vid, assignment) VALUES (?, ?)`, vid, assignment)
	return err
}

// LoadTable reads every assignment into a reclass.Table. Duplicate
// assignments are preserved, matching the text-table semantics.
func (s *Store) LoadTable() (reclass.Table, error) {
	rows, err := s.db.Query(`SELECT vid, assignment FROM reclassifications`)
	if err != nil {
		return nil, fmt.Errorf("query reclassifications: %w", err)
	}
	defer rows.Close()

	table := make(reclass.Table)
	for rows.Next() {
		var vid, assignment string
		if err := rows.Scan(&vid, &assignment); err != nil {
			return nil, fmt.Errorf("scan reclassification row: %w", err)
		}
		table.Add(vid, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read reclassifications: %w", err)
	}

	return table, nil
}
