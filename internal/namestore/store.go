// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namestore persists the set of names already drawn by the name
// generator in a SQLite database, so uniqueness holds across runs.
package namestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Store is a SQLite-backed namegen.UsedSet.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the database at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS used_names (
		name TEXT PRIMARY KEY,
		drawn_at TEXT NOT NULL
	)`)
	return err
}

// Has reports whether name has been drawn.
func (s *Store) Has(name string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM used_names WHERE name = ?`, name).Scan(&n); err != nil {
		return false, fmt.Errorf("querying %q: %w", name, err)
	}
	return n > 0, nil
}

// Add records name as drawn. Adding a name twice keeps the first timestamp.
func (s *Store) Add(name string) error {
	ts := s.now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO used_names (name, drawn_at) VALUES (?, ?)`, name, ts); err != nil {
		return fmt.Errorf("inserting %q: %w", name, err)
	}
	return nil
}

// Reset forgets every drawn name.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM used_names`); err != nil {
		return fmt.Errorf("clearing used names: %w", err)
	}
	return nil
}

// Count returns the number of drawn names.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT count(*) FROM used_names`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting used names: %w", err)
	}
	return n, nil
}
