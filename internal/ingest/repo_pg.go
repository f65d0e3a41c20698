package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRunRepo implements RunRepo using Postgres.
type PGRunRepo struct {
	DB *sql.DB
}

// Create stores a new run.
func (r *PGRunRepo) Create(ctx context.Context, run Run) error {
	sourceErrors, err := json.Marshal(orEmpty(run.SourceErrors))
	if err != nil {
		return err
	}

	const query = `
INSERT INTO ingest_runs (
    id,
    user_id,
    query,
    location,
    status,
    jobs_found,
    jobs_added,
    auto_applied,
    source_errors,
    started_at,
    finished_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.DB.ExecContext(
		ctx,
		query,
		run.ID,
		run.UserID,
		run.Query,
		run.Location,
		run.Status,
		run.JobsFound,
		run.JobsAdded,
		run.AutoApplied,
		sourceErrors,
		run.StartedAt,
		run.FinishedAt,
	)
	return err
}

// Update overwrites the mutable fields of a stored run.
func (r *PGRunRepo) Update(ctx context.Context, run Run) error {
	sourceErrors, err := json.Marshal(orEmpty(run.SourceErrors))
	if err != nil {
		return err
	}

	const query = `
UPDATE ingest_runs
SET status = $1, jobs_found = $2, jobs_added = $3, auto_applied = $4, source_errors = $5, finished_at = $6
WHERE user_id = $7 AND id = $8`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		run.Status,
		run.JobsFound,
		run.JobsAdded,
		run.AutoApplied,
		sourceErrors,
		run.FinishedAt,
		run.UserID,
		run.ID,
	)
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

const runColumns = `id, user_id, query, location, status, jobs_found, jobs_added, auto_applied, source_errors, started_at, finished_at`

// GetByID returns a run by ID for a user.
func (r *PGRunRepo) GetByID(ctx context.Context, userId, runID string) (Run, error) {
	const query = `
SELECT ` + runColumns + `
FROM ingest_runs
WHERE user_id = $1 AND id = $2
LIMIT 1`

	run, err := scanRun(r.DB.QueryRowContext(ctx, query, userId, runID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, ErrNotFound
		}
		return Run{}, err
	}
	return run, nil
}

// ListByUser returns runs newest first, honoring limit.
func (r *PGRunRepo) ListByUser(ctx context.Context, userId string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	const query = `
SELECT ` + runColumns + `
FROM ingest_runs
WHERE user_id = $1
ORDER BY started_at DESC
LIMIT $2`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Run, 0)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var run Run
	var sourceErrors []byte
	var finishedAt sql.NullTime
	if err := row.Scan(
		&run.ID,
		&run.UserID,
		&run.Query,
		&run.Location,
		&run.Status,
		&run.JobsFound,
		&run.JobsAdded,
		&run.AutoApplied,
		&sourceErrors,
		&run.StartedAt,
		&finishedAt,
	); err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal(sourceErrors, &run.SourceErrors); err != nil {
		return Run{}, err
	}
	if finishedAt.Valid {
		run.FinishedAt = &finishedAt.Time
	}
	return run, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ RunRepo = (*PGRunRepo)(nil)
