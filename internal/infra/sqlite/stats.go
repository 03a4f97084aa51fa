package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
)

// StatsStore keeps aggregate quiz counters per user.
type StatsStore struct {
	db *sql.DB
}

func NewStatsStore(db *sql.DB) *StatsStore {
	return &StatsStore{db: db}
}

// RecordAttempt counts one finished quiz.
func (s *StatsStore) RecordAttempt(ctx context.Context, userID int64, correct, total int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quiz_stats (user_id, attempts, correct_answers, total_answers)
		VALUES (?, 1, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			attempts = quiz_stats.attempts + 1,
			correct_answers = quiz_stats.correct_answers + excluded.correct_answers,
			total_answers = quiz_stats.total_answers + excluded.total_answers`,
		userID, correct, total,
	)
	if err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Get returns zero stats for users without attempts.
func (s *StatsStore) Get(ctx context.Context, userID int64) (entities.Stats, error) {
	var st entities.Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT attempts, correct_answers, total_answers FROM quiz_stats WHERE user_id = ?`, userID,
	).Scan(&st.Attempts, &st.CorrectAnswers, &st.TotalAnswers)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Stats{}, nil
	}
	if err != nil {
		return entities.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return st, nil
}

func (s *StatsStore) Reset(ctx context.Context, userID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM quiz_stats WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
