// Package boltstore keeps the key-value pairs in a bbolt database.
package boltstore

import (
	"fmt"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/idilsaglam/tada/internal/store"
)

const (
	DataFileName = "tada.db"
	bucketKV     = "kv"
)

type Store struct {
	db *bolt.DB
}

// Open opens (or creates) DataFileName in dir.
func Open(dir string) (*Store, error) {
	return OpenFile(filepath.Join(dir, DataFileName))
}

func OpenFile(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketKV))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketKV)).Get([]byte(key))
		if v == nil {
			return store.ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, err
}

func (s *Store) Set(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketKV)).Put([]byte(key), []byte(value))
	})
}
