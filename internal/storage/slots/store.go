// Package slots provides the durable named-slot storage used for session
// and preference payloads. Each slot is a single key/value row in a local
// SQLite file, the server-side equivalent of the browser storage the web
// client used.
package slots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a named-slot store over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating when necessary) the slot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open slot db: %w", err)
	}
	store := &Store{db: db}
	if err := store.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewWithDB wraps an existing database handle; the schema must already
// exist or be creatable.
func NewWithDB(db *sql.DB) (*Store, error) {
	store := &Store{db: db}
	if err := store.init(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) init(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS slots (
        name  TEXT PRIMARY KEY,
        value BLOB NOT NULL
    )`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init slot schema: %w", err)
	}
	return nil
}

// Get returns the slot value, or nil when the slot is absent.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %q: %w", name, err)
	}
	return value, nil
}

// Set writes the slot value, replacing any previous content.
func (s *Store) Set(ctx context.Context, name string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO slots (name, value) VALUES (?, ?)
        ON CONFLICT(name) DO UPDATE SET value = excluded.value
    `, name, value)
	if err != nil {
		return fmt.Errorf("set slot %q: %w", name, err)
	}
	return nil
}

// Delete removes the slot. Deleting an absent slot is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete slot %q: %w", name, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
