// Package backend opens a store.KV by name.
package backend

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/idilsaglam/tada/internal/store"
	"github.com/idilsaglam/tada/internal/store/boltstore"
	"github.com/idilsaglam/tada/internal/store/jsonstore"
	"github.com/idilsaglam/tada/internal/store/memstore"
	"github.com/idilsaglam/tada/internal/store/sqlitestore"
)

const (
	JSON   = "json"
	Bolt   = "bolt"
	SQLite = "sqlite"
	Memory = "memory"
)

var ErrUnknown = errors.New("backend: unknown")

// Names lists the accepted backend names.
func Names() []string { return []string{JSON, Bolt, SQLite, Memory} }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open returns the named store rooted at dir. The closer must be closed
// when the store is no longer used.
func Open(name, dir string) (store.KV, io.Closer, error) {
	if dir == "" {
		dir = "."
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name != Memory {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	switch name {
	case "", JSON:
		return jsonstore.New(dir), nopCloser{}, nil
	case Bolt:
		s, err := boltstore.Open(dir)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case SQLite:
		s, err := sqlitestore.Open(dir)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case Memory:
		return memstore.New(), nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}
