package storage

import (
	"context"
	"sync"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// StatsStore keeps quiz counters in memory.
type StatsStore struct {
	mu    sync.Mutex
	stats map[int64]entities.Stats
}

// NewStatsStore creates a new StatsStore.
func NewStatsStore() *StatsStore {
	return &StatsStore{
		stats: make(map[int64]entities.Stats),
	}
}

func (s *StatsStore) RecordAttempt(_ context.Context, userID int64, correct, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.stats[userID]
	st.Attempts++
	st.CorrectAnswers += correct
	st.TotalAnswers += total
	s.stats[userID] = st

	return nil
}

func (s *StatsStore) Get(_ context.Context, userID int64) (entities.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats[userID], nil
}

func (s *StatsStore) Reset(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.stats, userID)
	return nil
}
