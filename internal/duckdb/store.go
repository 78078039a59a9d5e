// Package duckdb provides an append-only, queryable store of
// classification results. The engine itself never touches the store;
// persistence is an optional sink wired in by the CLI.
package duckdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB connection for persisting diplotype calls.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS diplotype_calls (
		sample_id VARCHAR,
		gene VARCHAR,
		allele1 VARCHAR,
		allele2 VARCHAR,
		phase_ambiguous BOOLEAN,
		candidate_diplotypes VARCHAR,
		phenotype VARCHAR,
		activity_score DOUBLE,
		has_activity_score BOOLEAN,
		confidence VARCHAR,
		limitations VARCHAR,
		called_at TIMESTAMP DEFAULT current_timestamp,
		PRIMARY KEY (sample_id, gene)
	)`)
	return err
}
