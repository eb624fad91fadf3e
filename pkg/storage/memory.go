package storage

import (
	"context"
	"sync"
)

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithQuota caps the total number of stored bytes. Zero means unlimited.
func WithQuota(bytes int) MemoryOption {
	return func(m *MemoryStore) {
		m.quota = bytes
	}
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string][]byte
	quota    int
	disabled bool
	closed   bool
}

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{data: make(map[string][]byte)}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// SetDisabled toggles the store off, emulating browsers with storage turned
// off. Every call fails with ErrDisabled while disabled.
func (m *MemoryStore) SetDisabled(disabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = disabled
}

// Get implements Store.
func (m *MemoryStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.usableLocked(); err != nil {
		return nil, false, err
	}
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set implements Store.
func (m *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return ErrInvalidKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.usableLocked(); err != nil {
		return err
	}
	if m.quota > 0 {
		used := len(value)
		for k, v := range m.data {
			if k != key {
				used += len(v)
			}
		}
		if used > m.quota {
			return ErrQuotaExceeded
		}
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MemoryStore) usableLocked() error {
	if m.closed {
		return ErrClosed
	}
	if m.disabled {
		return ErrDisabled
	}
	return nil
}
