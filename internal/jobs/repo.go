package jobs

import "context"

// Filters narrows job listings. Nil pointer fields are not applied.
type Filters struct {
	Domain   string
	Remote   *bool
	MinScore *int
}

// Repo defines persistence operations for jobs.
type Repo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, userId, jobID string) (Job, error)
	List(ctx context.Context, userId string, filters Filters) ([]Job, error)
	CountByDomain(ctx context.Context, userId string) (map[string]int, error)
	UpdateScore(ctx context.Context, userId, jobID string, score int) error
}
