package kvstore

import (
	"context"
	"sync"
)

// memory implements Store using per-scope in-memory maps.
type memory struct {
	mu   sync.RWMutex
	data map[Scope]map[string]string
}

// NewMemory creates an in-memory Store. Both scopes are volatile, so the
// durable scope lives only as long as the process. Used as the session
// backend by the composite stores and as a standalone store in tests.
func NewMemory() Store {
	return &memory{
		data: map[Scope]map[string]string{
			Durable: make(map[string]string),
			Session: make(map[string]string),
		},
	}
}

func (m *memory) Get(_ context.Context, scope Scope, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[scope][key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *memory) Set(_ context.Context, scope Scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[scope][key] = value
	return nil
}

func (m *memory) Remove(_ context.Context, scope Scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data[scope], key)
	return nil
}
