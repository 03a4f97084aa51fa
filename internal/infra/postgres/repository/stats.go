package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-master/internal/domain/entities"
	"github.com/aliskhannn/vocab-master/internal/infra/postgres"
)

// StatsRepository provides access to aggregate quiz counters.
type StatsRepository struct {
	db postgres.DBTX
}

func NewStatsRepository(db postgres.DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// RecordAttempt counts one finished quiz.
func (r *StatsRepository) RecordAttempt(ctx context.Context, userID int64, correct, total int) error {
	query := `
		INSERT INTO quiz_stats (user_id, attempts, correct_answers, total_answers)
		VALUES ($1, 1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET
			attempts = quiz_stats.attempts + 1,
			correct_answers = quiz_stats.correct_answers + EXCLUDED.correct_answers,
			total_answers = quiz_stats.total_answers + EXCLUDED.total_answers
	`

	if _, err := r.db.Exec(ctx, query, userID, correct, total); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Get returns zero stats for users without attempts.
func (r *StatsRepository) Get(ctx context.Context, userID int64) (entities.Stats, error) {
	var st entities.Stats
	err := r.db.QueryRow(ctx, `
		SELECT attempts, correct_answers, total_answers
		FROM quiz_stats
		WHERE user_id = $1
	`, userID).Scan(&st.Attempts, &st.CorrectAnswers, &st.TotalAnswers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Stats{}, nil
		}
		return entities.Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return st, nil
}

func (r *StatsRepository) Reset(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM quiz_stats WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}
