package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// IDSetStore keeps per-user sets of word ids, one row per id.
type IDSetStore struct {
	db *sql.DB
}

func NewIDSetStore(db *sql.DB) *IDSetStore {
	return &IDSetStore{db: db}
}

// Load returns the stored ids in sorted order, or nil when nothing is stored.
func (s *IDSetStore) Load(ctx context.Context, userID int64, key string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word_id FROM user_word_sets WHERE user_id = ? AND set_key = ? ORDER BY word_id`,
		userID, key,
	)
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", key, err)
	}

	return ids, nil
}

// Save replaces the stored set in one transaction.
func (s *IDSetStore) Save(ctx context.Context, userID int64, key string, ids []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM user_word_sets WHERE user_id = ? AND set_key = ?`, userID, key,
	); err != nil {
		return fmt.Errorf("clear %s: %w", key, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO user_word_sets (user_id, set_key, word_id) VALUES (?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		if _, err := stmt.ExecContext(ctx, userID, key, id); err != nil {
			return fmt.Errorf("insert %s %q: %w", key, id, err)
		}
	}

	return tx.Commit()
}

func (s *IDSetStore) Delete(ctx context.Context, userID int64, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM user_word_sets WHERE user_id = ? AND set_key = ?`, userID, key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
