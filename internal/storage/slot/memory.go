package slot

import (
	"context"
	"sync"
)

// Ensure Memory implements Backend.
var _ Backend = (*Memory)(nil)

// Memory is an in-process slot backend. It is used by tests and by
// ephemeral runs where durability does not matter.
type Memory struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{slots: make(map[string]string)}
}

// Get returns the payload stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.slots[key]
	return payload, ok, nil
}

// Put replaces the payload stored under key.
func (m *Memory) Put(_ context.Context, key, payload string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = payload
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error {
	return nil
}
