// Package memory contains in-process implementations of persistence interfaces.
// Values live as long as the process does.
package memory

import (
	"context"
	"sync"

	"github.com/example/academia/internal/ports/secondary"
)

// KVStore implements secondary.KeyValueStore with a map.
type KVStore struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewKVStore creates an empty in-memory store.
func NewKVStore() *KVStore {
	return &KVStore{entries: make(map[string]string)}
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.entries[key]
	if !ok {
		return "", secondary.ErrKeyNotFound
	}
	return v, nil
}

// Set replaces the value stored under key.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return nil
}

// Delete removes key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Ensure KVStore implements the interface.
var _ secondary.KeyValueStore = (*KVStore)(nil)
