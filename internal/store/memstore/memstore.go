// Package memstore is a process-local KV, used by tests and the "memory"
// backend.
package memstore

import (
	"sync"

	"github.com/idilsaglam/tada/internal/store"
)

type Store struct {
	mu   sync.Mutex
	data map[string]string
	// Writes counts successful Set calls.
	Writes int
	// Err, when set, is returned by every Set.
	Err error
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.data[key] = value
	s.Writes++
	return nil
}
