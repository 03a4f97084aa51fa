package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_word_sets (
    user_id INTEGER NOT NULL,
    set_key TEXT NOT NULL,
    word_id TEXT NOT NULL,
    PRIMARY KEY (user_id, set_key, word_id)
);

CREATE TABLE IF NOT EXISTS quiz_stats (
    user_id INTEGER PRIMARY KEY,
    attempts INTEGER NOT NULL DEFAULT 0,
    correct_answers INTEGER NOT NULL DEFAULT 0,
    total_answers INTEGER NOT NULL DEFAULT 0
);
`

// Open opens the database at path and applies the schema.
// A single connection is kept so writers never contend for the file lock
// and ":memory:" databases are shared by every query.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return db, nil
}
