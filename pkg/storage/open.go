package storage

import (
	"context"
	"fmt"
	"strings"
)

// Open constructs a store for backend. path is a directory for the file
// backend and a database file for sqlite; memory ignores it.
func Open(ctx context.Context, backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(ctx, path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}
