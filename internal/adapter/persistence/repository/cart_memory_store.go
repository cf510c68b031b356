package repository

import (
	"context"
	"sync"

	"checkout_core/internal/usecase/interfaces"
)

// MemoryKeyValueStore is a process local store for development and tests.
type MemoryKeyValueStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ interfaces.IKeyValueStore = (*MemoryKeyValueStore)(nil)

func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{data: make(map[string][]byte)}
}

func (s *MemoryKeyValueStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (s *MemoryKeyValueStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryKeyValueStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
