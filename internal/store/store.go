// Package store implements the record store contract: a key-value store
// with string keys, opaque serialized values, named root pointers that
// survive process restarts, and an explicit commit.
//
// Store is backed by a single SQLite table of (name, value) rows, one row
// per named root, written and committed in a single transaction — so
// "explicit commit" here is literally a SQL commit, and a crash before it
// leaves every root at its prior value.
package store

import (
	"bytes"
	"database/sql"
	"encoding/gob"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a named-root key-value store backed by an embedded SQLite
// database file (or ":memory:" for an ephemeral store, used by tests).
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the roots table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// The engine never has more than one crawl session writing at a time;
	// a single connection keeps SQLite's locking simple.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS roots (
			name  TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create roots table: %w", err)
	}
	return &Store{db: db}, nil
}

// HasRoot reports whether a named root has ever been committed.
func (s *Store) HasRoot(name string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM roots WHERE name = ?`, name).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("store: check root %s: %w", name, err)
	}
	return n > 0, nil
}

// LoadRoot decodes the named root into dest (a pointer). It reports
// whether the root existed; a missing root is not an error — the caller
// creates the map/counter fresh.
func (s *Store) LoadRoot(name string, dest any) (bool, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT value FROM roots WHERE name = ?`, name).Scan(&blob)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("store: load root %s: %w", name, err)
	}
	if err := gob.NewDecoder(bytes.NewReader(blob)).Decode(dest); err != nil {
		return false, fmt.Errorf("store: decode root %s: %w", name, err)
	}
	return true, nil
}

// CommitRoots writes every (name, value) pair in roots and commits them
// as a single transaction, the only durability boundary the engine has.
// Either every root advances or none does.
func (s *Store) CommitRoots(roots map[string]any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin commit: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO roots (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return fmt.Errorf("store: prepare commit: %w", err)
	}
	defer stmt.Close()

	for name, value := range roots {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(value); err != nil {
			return fmt.Errorf("store: encode root %s: %w", name, err)
		}
		if _, err := stmt.Exec(name, buf.Bytes()); err != nil {
			return fmt.Errorf("store: write root %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
