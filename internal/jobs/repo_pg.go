package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a job. A dedupe key collision yields ErrDuplicate.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	requirements, err := json.Marshal(orEmpty(job.Requirements))
	if err != nil {
		return err
	}

	const query = `
INSERT INTO jobs (
    id,
    user_id,
    title,
    company,
    location,
    salary,
    job_type,
    remote,
    description,
    requirements,
    source,
    url,
    posted_date,
    domain,
    match_score,
    dedupe_key,
    scraped_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
ON CONFLICT (user_id, dedupe_key) DO NOTHING`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.Title,
		job.Company,
		job.Location,
		job.Salary,
		job.JobType,
		job.Remote,
		job.Description,
		requirements,
		job.Source,
		job.URL,
		job.PostedDate,
		job.Domain,
		job.MatchScore,
		job.DedupeKey,
		job.ScrapedAt,
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

const jobColumns = `id, user_id, title, company, location, salary, job_type, remote, description, requirements, source, url, posted_date, domain, match_score, dedupe_key, scraped_at`

// GetByID fetches a job by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, jobID string) (Job, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM jobs
WHERE user_id = $1 AND id = $2
LIMIT 1`, jobColumns)

	row := r.DB.QueryRowContext(ctx, query, userId, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// List returns jobs matching the filters, newest first.
func (r *PGRepo) List(ctx context.Context, userId string, filters Filters) ([]Job, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s\nFROM jobs\nWHERE user_id = $1", jobColumns)

	args := []any{userId}
	if filters.Domain != "" {
		args = append(args, filters.Domain)
		fmt.Fprintf(&sb, " AND domain = $%d", len(args))
	}
	if filters.Remote != nil {
		args = append(args, *filters.Remote)
		fmt.Fprintf(&sb, " AND remote = $%d", len(args))
	}
	if filters.MinScore != nil {
		args = append(args, *filters.MinScore)
		fmt.Fprintf(&sb, " AND match_score >= $%d", len(args))
	}
	sb.WriteString("\nORDER BY scraped_at DESC")

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// CountByDomain returns the number of stored jobs per domain.
func (r *PGRepo) CountByDomain(ctx context.Context, userId string) (map[string]int, error) {
	const query = `
SELECT COALESCE(NULLIF(domain, ''), 'unknown'), COUNT(*)
FROM jobs
WHERE user_id = $1
GROUP BY 1`

	rows, err := r.DB.QueryContext(ctx, query, userId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var domain string
		var count int
		if err := rows.Scan(&domain, &count); err != nil {
			return nil, err
		}
		out[domain] = count
	}
	return out, rows.Err()
}

// UpdateScore updates the stored match score for one job.
func (r *PGRepo) UpdateScore(ctx context.Context, userId, jobID string, score int) error {
	const query = `
UPDATE jobs
SET match_score = $1
WHERE user_id = $2 AND id = $3`
	_, err := r.DB.ExecContext(ctx, query, score, userId, jobID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var requirements []byte
	if err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.Salary,
		&job.JobType,
		&job.Remote,
		&job.Description,
		&requirements,
		&job.Source,
		&job.URL,
		&job.PostedDate,
		&job.Domain,
		&job.MatchScore,
		&job.DedupeKey,
		&job.ScrapedAt,
	); err != nil {
		return Job{}, err
	}
	if err := json.Unmarshal(requirements, &job.Requirements); err != nil {
		return Job{}, err
	}
	return job, nil
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
