package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// LearnedService manages the words a user marked as learned.
// The set is read from the store on every call and written back in full after
// each mutation. Store failures are logged and never reach the caller.
type LearnedService struct {
	store  IDSetStore
	words  WordRepository
	logger *zap.Logger
}

func NewLearnedService(store IDSetStore, words WordRepository, logger *zap.Logger) *LearnedService {
	return &LearnedService{
		store:  store,
		words:  words,
		logger: logger,
	}
}

// Load returns the learned set; unreadable data yields an empty set.
func (s *LearnedService) Load(ctx context.Context, userID int64) entities.LearnedSet {
	ids, err := s.store.Load(ctx, userID, KeyLearnedWords)
	if err != nil {
		s.logger.Warn("failed to load learned words, starting empty",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return entities.NewLearnedSet(nil)
	}
	return entities.NewLearnedSet(ids)
}

func (s *LearnedService) IsLearned(ctx context.Context, userID int64, wordID string) bool {
	return s.Load(ctx, userID).Contains(wordID)
}

// Count returns the number of learned words present in the dataset.
func (s *LearnedService) Count(ctx context.Context, userID int64) int {
	return len(s.Words(ctx, userID))
}

// Mark adds a word to the learned set. It reports whether the set changed.
func (s *LearnedService) Mark(ctx context.Context, userID int64, wordID string) (bool, error) {
	if _, err := s.words.GetByID(wordID); err != nil {
		return false, fmt.Errorf("mark %q as learned: %w", wordID, err)
	}

	set := s.Load(ctx, userID)
	if set.Contains(wordID) {
		return false, nil
	}

	set[wordID] = struct{}{}
	s.save(ctx, userID, set)

	return true, nil
}

// Unmark removes a word from the learned set. It reports whether the set changed.
func (s *LearnedService) Unmark(ctx context.Context, userID int64, wordID string) bool {
	set := s.Load(ctx, userID)
	if !set.Contains(wordID) {
		return false
	}

	delete(set, wordID)
	s.save(ctx, userID, set)

	return true
}

// Toggle flips the learned flag of a word and returns the new value.
func (s *LearnedService) Toggle(ctx context.Context, userID int64, wordID string) (bool, error) {
	if s.IsLearned(ctx, userID, wordID) {
		s.Unmark(ctx, userID, wordID)
		return false, nil
	}

	if _, err := s.Mark(ctx, userID, wordID); err != nil {
		return false, err
	}
	return true, nil
}

// Words returns the learned words in dataset order. Ids no longer present in
// the dataset are skipped.
func (s *LearnedService) Words(ctx context.Context, userID int64) []*entities.Word {
	return s.words.GetByIDs(s.Load(ctx, userID))
}

// Search filters learned words by headword or meaning, case-insensitively.
// An empty query returns every learned word.
func (s *LearnedService) Search(ctx context.Context, userID int64, query string) []*entities.Word {
	learned := s.Words(ctx, userID)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return learned
	}

	out := make([]*entities.Word, 0, len(learned))
	for _, w := range learned {
		if strings.Contains(strings.ToLower(w.ID), query) ||
			strings.Contains(strings.ToLower(w.NativeMeaning), query) {
			out = append(out, w)
		}
	}
	return out
}

// Reset forgets every learned word.
func (s *LearnedService) Reset(ctx context.Context, userID int64) {
	if err := s.store.Delete(ctx, userID, KeyLearnedWords); err != nil {
		s.logger.Warn("failed to reset learned words",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}

func (s *LearnedService) save(ctx context.Context, userID int64, set entities.LearnedSet) {
	if err := s.store.Save(ctx, userID, KeyLearnedWords, set.IDs()); err != nil {
		s.logger.Warn("failed to save learned words",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}
}
