// Package storage provides the key-value persistence collaborator the Store
// writes through to. Backends share one contract: a single opaque text value
// stored under a fixed namespace key.
package storage

import (
	"context"
	"sync"
)

// KV is the persistence contract. Load reports ok=false when the key has never
// been written; that is not an error.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Memory is an in-process KV used by tests and as a last-resort fallback.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Load returns the stored value, if any.
func (m *Memory) Load(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Save stores the value.
func (m *Memory) Save(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
