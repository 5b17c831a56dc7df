package storage

import (
	"errors"
	"sync"
)

// ErrInternal marks failures of the storage backend itself
var ErrInternal = errors.New("storage: internal error")

// Slot is a named key-value slot in persistent storage
type Slot interface {
	// Get returns the value stored under key; ok is false if the key is absent
	Get(key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key
	Set(key, value string) error
}

// MemoryStore is a Slot kept in memory
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Slot
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Slot
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
