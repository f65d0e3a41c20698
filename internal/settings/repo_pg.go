package settings

import (
	"context"
	"database/sql"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// GetAll returns all stored settings for a user.
func (r *PGRepo) GetAll(ctx context.Context, userId string) (map[string]string, error) {
	const query = `
SELECT key, value
FROM settings
WHERE user_id = $1`

	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, rows.Err()
}

// Set stores or overwrites one setting for a user.
func (r *PGRepo) Set(ctx context.Context, userId, key, value string) error {
	const query = `
INSERT INTO settings (user_id, key, value, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := r.DB.ExecContext(ctx, query, userId, key, value, time.Now().UTC())
	return err
}

var _ Repo = (*PGRepo)(nil)
