// Package sqlitestore keeps the key-value pairs in a single SQLite table.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/idilsaglam/tada/internal/store"
)

const DataFileName = "tada.sqlite"

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore wraps an already migrated database.
func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, errors.New("sqlitestore: nil db")
	}
	return &Store{db: db, now: time.Now}, nil
}

// Open opens DataFileName in dir and applies the migrations.
func Open(dir string) (*Store, error) {
	db, err := sql.Open("sqlite3", filepath.Join(dir, DataFileName))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	s, err := NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrNotFound
		}
		return "", fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}
