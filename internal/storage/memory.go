package storage

import "context"

// MemoryStorage is a map-backed Storage used by tests and as the in-memory
// fallback when no durable backend is configured.
type MemoryStorage struct {
	data map[string]string

	// FailWrites makes Set and Delete return this error, for exercising
	// persistence-degraded paths in tests.
	FailWrites error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(_ context.Context, key, value string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	if s.FailWrites != nil {
		return s.FailWrites
	}
	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}

// Seed pre-populates a key, bypassing FailWrites. Test helper.
func (s *MemoryStorage) Seed(key, value string) {
	s.data[key] = value
}
