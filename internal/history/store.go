// Package history keeps an append-only SQLite log of knowledge
// mutations. It is an independent subsystem: if it fails to
// initialize, the server logs a warning and serves without it.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// openDB is a package-level var to allow test injection.
var openDB = sql.Open

const schema = `
CREATE TABLE IF NOT EXISTS updates (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	concept    TEXT    NOT NULL,
	known      INTEGER NOT NULL,
	created_at TEXT    NOT NULL DEFAULT (datetime('now'))
);
`

// Entry is one logged mutation.
type Entry struct {
	ID        int64  `json:"id"`
	Concept   string `json:"concept"`
	Known     bool   `json:"known"`
	CreatedAt string `json:"created_at"`
}

// Store wraps the SQLite log.
type Store struct {
	db *sql.DB
}

// Open creates the database file (and parent directory) if needed and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}
	db, err := openDB("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends one mutation to the log.
func (s *Store) Record(concept string, known bool) error {
	_, err := s.db.Exec(`INSERT INTO updates (concept, known) VALUES (?, ?)`, concept, boolToInt(known))
	if err != nil {
		return fmt.Errorf("recording update: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, concept, known, created_at FROM updates ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying updates: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var known int
		if err := rows.Scan(&e.ID, &e.Concept, &known, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning update row: %w", err)
		}
		e.Known = known != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating updates: %w", err)
	}
	return entries, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
