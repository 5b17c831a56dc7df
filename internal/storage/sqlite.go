package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is a Slot backed by a single kv table in a SQLite database
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (and creates if needed) the database at path and prepares its schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.Prepare(); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return s, nil
}

// Prepare creates the kv table if it does not exist yet
func (s *SQLiteStore) Prepare() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Get implements Slot
func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrInternal, err)
	}
	return value, true, nil
}

// Set implements Slot
func (s *SQLiteStore) Set(key, value string) error {
	if _, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value); err != nil {
		return errors.Join(ErrInternal, err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
