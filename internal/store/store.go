// Package store defines the persistent key-value boundary the app writes
// its state through.
package store

import "errors"

var ErrNotFound = errors.New("store: not found")

// KV is a synchronous string-keyed store.
type KV interface {
	// Get returns ErrNotFound when key has never been set.
	Get(key string) (string, error)
	Set(key, value string) error
}
