package storage

import (
	"sync"
	"time"
)

type examEntry[T any] struct {
	exam      T
	touchedAt time.Time
}

// ExamStorage provides in-memory storage for running exams by key.
// Every access refreshes the entry, Sweep drops entries idle for too long.
type ExamStorage[K comparable, T any] struct {
	mu    sync.RWMutex
	exams map[K]*examEntry[T]
	now   func() time.Time
}

// NewExamStorage creates a new ExamStorage.
func NewExamStorage[K comparable, T any]() *ExamStorage[K, T] {
	return &ExamStorage[K, T]{
		exams: make(map[K]*examEntry[T]),
		now:   time.Now,
	}
}

// Store saves the exam under key.
func (s *ExamStorage[K, T]) Store(key K, exam T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exams[key] = &examEntry[T]{exam: exam, touchedAt: s.now()}
}

// Get retrieves the exam stored under key.
func (s *ExamStorage[K, T]) Get(key K) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.exams[key]
	if !ok {
		var zero T
		return zero, false
	}
	e.touchedAt = s.now()
	return e.exam, true
}

// Delete removes the exam stored under key.
func (s *ExamStorage[K, T]) Delete(key K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.exams, key)
}

// Len returns the number of stored exams.
func (s *ExamStorage[K, T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exams)
}

// Sweep removes exams untouched for longer than idle and returns how many were removed.
func (s *ExamStorage[K, T]) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for key, e := range s.exams {
		if e.touchedAt.Before(cutoff) {
			delete(s.exams, key)
			removed++
		}
	}
	return removed
}
