package applications

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts an application. A (user, job) collision yields ErrDuplicate.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (
    id,
    user_id,
    job_id,
    status,
    applied_at,
    notes,
    cover_letter,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, job_id) DO NOTHING`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.UserID,
		app.JobID,
		app.Status,
		app.AppliedAt,
		app.Notes,
		app.CoverLetter,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if err != nil {
		return err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return ErrDuplicate
	}
	return nil
}

const appColumns = `id, user_id, job_id, status, applied_at, notes, cover_letter, created_at, updated_at`

// GetByID fetches an application by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, appID string) (Application, error) {
	const query = `
SELECT ` + appColumns + `
FROM applications
WHERE user_id = $1 AND id = $2
LIMIT 1`

	app, err := scanApplication(r.DB.QueryRowContext(ctx, query, userId, appID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	return app, nil
}

// List returns applications, optionally filtered by status, newest first.
func (r *PGRepo) List(ctx context.Context, userId string, status Status) ([]Application, error) {
	query := `
SELECT ` + appColumns + `
FROM applications
WHERE user_id = $1`
	args := []any{userId}
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}
	query += "\nORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

// UpdateStatus changes the status of an application.
func (r *PGRepo) UpdateStatus(ctx context.Context, userId, appID string, status Status, appliedAt *time.Time) error {
	const query = `
UPDATE applications
SET status = $1, applied_at = COALESCE($2, applied_at), updated_at = $3
WHERE user_id = $4 AND id = $5`

	res, err := r.DB.ExecContext(ctx, query, status, appliedAt, time.Now().UTC(), userId, appID)
	if err != nil {
		return err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsForJob reports whether the user already applied to the job.
func (r *PGRepo) ExistsForJob(ctx context.Context, userId, jobID string) (bool, error) {
	const query = `
SELECT EXISTS (
    SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2
)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userId, jobID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (Application, error) {
	var app Application
	var appliedAt sql.NullTime
	if err := row.Scan(
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.Status,
		&appliedAt,
		&app.Notes,
		&app.CoverLetter,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return Application{}, err
	}
	if appliedAt.Valid {
		app.AppliedAt = &appliedAt.Time
	}
	return app, nil
}

var _ Repo = (*PGRepo)(nil)
