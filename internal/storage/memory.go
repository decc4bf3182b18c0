package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-process KeyValueStore used for tests and ephemeral
// runs. Availability can be toggled to exercise the "no device storage in
// this execution context" path.
type MemoryStore struct {
	mu          sync.RWMutex
	slots       map[string]string
	unavailable bool
}

// NewMemoryStore creates an empty, available in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

// SetAvailable toggles whether the store reports itself usable.
func (m *MemoryStore) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = !available
}

func (m *MemoryStore) Available(_ context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.unavailable
}

func (m *MemoryStore) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return "", false, ErrUnavailable
	}
	value, ok := m.slots[key]
	return value, ok, nil
}

func (m *MemoryStore) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	m.slots[key] = value
	return nil
}

func (m *MemoryStore) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrUnavailable
	}
	delete(m.slots, key)
	return nil
}
