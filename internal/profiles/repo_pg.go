package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobtrack-backend/internal/cvparse"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new current profile, demoting any previous one.
func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	skills, err := json.Marshal(orEmpty(p.Skills))
	if err != nil {
		return err
	}
	domains, err := json.Marshal(orEmpty(p.Domains))
	if err != nil {
		return err
	}
	experience, err := json.Marshal(orEmptyEntries(p.Experience))
	if err != nil {
		return err
	}
	education, err := json.Marshal(orEmptyEntries(p.Education))
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const demote = `
UPDATE profiles
SET current = FALSE, updated_at = $2
WHERE user_id = $1 AND current`
	if _, err := tx.ExecContext(ctx, demote, p.UserID, p.UpdatedAt); err != nil {
		return err
	}

	const insert = `
INSERT INTO profiles (
    id,
    user_id,
    name,
    email,
    phone,
    summary,
    skills,
    experience,
    education,
    domains,
    raw_text,
    file_key,
    current,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, TRUE, $13, $14)`
	if _, err := tx.ExecContext(
		ctx,
		insert,
		p.ID,
		p.UserID,
		p.Name,
		p.Email,
		p.Phone,
		p.Summary,
		skills,
		experience,
		education,
		domains,
		p.RawText,
		p.FileKey,
		p.CreatedAt,
		p.UpdatedAt,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// GetCurrentByUser returns the user's current profile.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userId string) (Profile, error) {
	const query = `
SELECT id, user_id, name, email, phone, summary, skills, experience, education, domains, raw_text, file_key, created_at, updated_at
FROM profiles
WHERE user_id = $1 AND current
ORDER BY created_at DESC
LIMIT 1`

	var p Profile
	var skills, experience, education, domains []byte
	err := r.DB.QueryRowContext(ctx, query, userId).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Summary,
		&skills,
		&experience,
		&education,
		&domains,
		&p.RawText,
		&p.FileKey,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}

	if err := json.Unmarshal(skills, &p.Skills); err != nil {
		return Profile{}, err
	}
	if err := json.Unmarshal(domains, &p.Domains); err != nil {
		return Profile{}, err
	}
	if err := json.Unmarshal(experience, &p.Experience); err != nil {
		return Profile{}, err
	}
	if err := json.Unmarshal(education, &p.Education); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orEmptyEntries(list []cvparse.Entry) []cvparse.Entry {
	if list == nil {
		return []cvparse.Entry{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
