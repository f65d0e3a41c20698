package ingest

import "context"

// RunRepo defines persistence operations for ingest runs.
type RunRepo interface {
	Create(ctx context.Context, run Run) error
	Update(ctx context.Context, run Run) error
	GetByID(ctx context.Context, userId, runID string) (Run, error)
	ListByUser(ctx context.Context, userId string, limit int) ([]Run, error)
}
