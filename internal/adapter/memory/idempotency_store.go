// Package memory provides in-memory adapters for tests and
// single-instance deployments.
package memory

import (
	"context"
	"sync"
)

// IdempotencyStore is a process-lifetime set of applied payment keys.
// It only suppresses duplicates within one running instance; durable
// at-most-once semantics come from the Postgres store or the backend's
// own idempotency handling.
type IdempotencyStore struct {
	mu   sync.RWMutex
	keys map[string]struct{}
}

// NewIdempotencyStore returns an empty store.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{keys: make(map[string]struct{})}
}

// Processed reports whether the key was already applied.
func (s *IdempotencyStore) Processed(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.keys[key]
	return ok, nil
}

// MarkProcessed records the key; marking twice is a no-op.
func (s *IdempotencyStore) MarkProcessed(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[key] = struct{}{}
	return nil
}
