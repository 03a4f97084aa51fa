package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/vocab-master/internal/infra/postgres"
)

// TxRunner runs fn in a transaction.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error
}

// IDSetRepository keeps per-user sets of word ids in PostgreSQL.
type IDSetRepository struct {
	db postgres.DBTX
	tx TxRunner
}

func NewIDSetRepository(db postgres.DBTX, tx TxRunner) *IDSetRepository {
	return &IDSetRepository{db: db, tx: tx}
}

// Load returns the stored ids in sorted order, or nil when nothing is stored.
func (r *IDSetRepository) Load(ctx context.Context, userID int64, key string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT word_id FROM user_word_sets
		WHERE user_id = $1 AND set_key = $2
		ORDER BY word_id
	`, userID, key)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s: %w", key, err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Save replaces the stored set atomically.
func (r *IDSetRepository) Save(ctx context.Context, userID int64, key string, ids []string) error {
	return r.tx.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM user_word_sets WHERE user_id = $1 AND set_key = $2`, userID, key,
		); err != nil {
			return fmt.Errorf("clear %s: %w", key, err)
		}

		if len(ids) == 0 {
			return nil
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO user_word_sets (user_id, set_key, word_id)
			SELECT $1, $2, unnest($3::text[])
			ON CONFLICT DO NOTHING
		`, userID, key, ids); err != nil {
			return fmt.Errorf("insert %s: %w", key, err)
		}

		return nil
	})
}

func (r *IDSetRepository) Delete(ctx context.Context, userID int64, key string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM user_word_sets WHERE user_id = $1 AND set_key = $2`, userID, key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
