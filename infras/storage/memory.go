package storage

import (
	"bestevents/shared/constant"
	"context"
	"slices"
	"sync"
)

type memoryBackend struct {
	mu        sync.RWMutex
	resources map[string][]byte
}

// NewMemory returns a backend that keeps resources in process memory only.
func NewMemory() Backend {
	return &memoryBackend{resources: map[string][]byte{}}
}

func (m *memoryBackend) Read(_ context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.resources[name]
	if !ok {
		return nil, ErrNotExist
	}

	return slices.Clone(data), nil
}

func (m *memoryBackend) Write(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resources[name] = slices.Clone(data)

	return nil
}

func (m *memoryBackend) Driver() string {
	return constant.StorageDriverMemory
}

func (m *memoryBackend) Close() error {
	return nil
}
