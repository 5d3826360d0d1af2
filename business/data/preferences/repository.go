package preferences

import (
	"context"
	"sync"
)

// Repository is a durable key value store for encoded preference records
type Repository interface {
	// Get returns the value stored at key, found is false when the key has never been written
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Put replaces the value at key
	Put(ctx context.Context, key string, value []byte) error
	// Keys returns every key currently stored
	Keys(ctx context.Context) ([]string, error)
}

// MemoryRepository is a process local Repository
type MemoryRepository struct {
	mu     sync.Mutex
	values map[string][]byte
}

// MakeMemoryRepository builds an empty MemoryRepository
func MakeMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		values: make(map[string][]byte),
	}
}

func (m *MemoryRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, present := m.values[key]
	if !present {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (m *MemoryRepository) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryRepository) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for key := range m.values {
		keys = append(keys, key)
	}
	return keys, nil
}
