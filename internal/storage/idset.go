package storage

import (
	"context"
	"sync"
)

type setKey struct {
	userID int64
	key    string
}

// IDSetStore provides in-memory storage for per-user sets of word ids.
type IDSetStore struct {
	mu   sync.RWMutex
	sets map[setKey][]string
}

// NewIDSetStore creates a new IDSetStore.
func NewIDSetStore() *IDSetStore {
	return &IDSetStore{
		sets: make(map[setKey][]string),
	}
}

// Load returns a copy of the stored ids, or nil when nothing is stored.
func (s *IDSetStore) Load(_ context.Context, userID int64, key string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, ok := s.sets[setKey{userID, key}]
	if !ok {
		return nil, nil
	}
	return append([]string(nil), ids...), nil
}

// Save replaces the stored ids.
func (s *IDSetStore) Save(_ context.Context, userID int64, key string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[setKey{userID, key}] = append([]string(nil), ids...)
	return nil
}

// Delete removes the stored ids.
func (s *IDSetStore) Delete(_ context.Context, userID int64, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, setKey{userID, key})
	return nil
}
