package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound reports a missing key. Callers that can fall back to a default
// state should treat it as an empty read rather than a failure.
var ErrNotFound = errors.New("storage: key not found")

// KV is the durable key/value surface backing cart and theme persistence.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Memory is a process-local KV used by tests and as a fallback when no
// storage path is configured.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(ctx context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
