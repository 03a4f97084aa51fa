package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// ProgressSummary is the progress screen of a user.
type ProgressSummary struct {
	Learned    int
	TotalWords int
	Percentage int // learned words as a rounded-down share of the dataset

	entities.Stats
}

type ProgressService struct {
	stats    StatsRepository
	learned  *LearnedService
	rotation *RotationTracker
	words    WordRepository
	logger   *zap.Logger
}

func NewProgressService(
	stats StatsRepository,
	learned *LearnedService,
	rotation *RotationTracker,
	words WordRepository,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		stats:    stats,
		learned:  learned,
		rotation: rotation,
		words:    words,
		logger:   logger,
	}
}

// RecordAttempt adds a finished quiz to the user's counters.
func (s *ProgressService) RecordAttempt(ctx context.Context, userID int64, correct, total int) {
	if err := s.stats.RecordAttempt(ctx, userID, correct, total); err != nil {
		s.logger.Warn("failed to record quiz attempt",
			zap.Int64("user_id", userID),
			zap.Int("correct", correct),
			zap.Int("total", total),
			zap.Error(err),
		)
	}
}

// Summary collects learned counts and quiz statistics. Unreadable statistics
// are reported as zero.
func (s *ProgressService) Summary(ctx context.Context, userID int64) *ProgressSummary {
	stats, err := s.stats.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load quiz stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		stats = entities.Stats{}
	}

	learned := s.learned.Count(ctx, userID)
	total := s.words.Len()

	pct := 0
	if total > 0 {
		pct = learned * 100 / total
	}

	return &ProgressSummary{
		Learned:    learned,
		TotalWords: total,
		Percentage: pct,
		Stats:      stats,
	}
}

// Reset clears learned words, the exam rotation and quiz statistics.
func (s *ProgressService) Reset(ctx context.Context, userID int64) {
	s.learned.Reset(ctx, userID)
	s.rotation.Reset(ctx, userID)

	if err := s.stats.Reset(ctx, userID); err != nil {
		s.logger.Warn("failed to reset quiz stats",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
	}

	s.logger.Info("progress reset", zap.Int64("user_id", userID))
}
