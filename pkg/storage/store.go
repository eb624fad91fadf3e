// Package storage persists form records under a single key. Backends are
// simple key-value stores with last-writer-wins semantics; the Sink on top
// turns any backend fault into a boolean so submission flows never fail on
// storage.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrQuotaExceeded is returned when a write would exceed the store's
	// capacity.
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
	// ErrDisabled is returned by stores that have been switched off.
	ErrDisabled = errors.New("storage: disabled")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("storage: closed")
	// ErrInvalidKey rejects empty keys.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Store is a string-keyed byte store. Set replaces any prior value in full.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend identifiers accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
