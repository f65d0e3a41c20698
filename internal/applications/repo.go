package applications

import (
	"context"
	"time"
)

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, userId, appID string) (Application, error)
	List(ctx context.Context, userId string, status Status) ([]Application, error)
	UpdateStatus(ctx context.Context, userId, appID string, status Status, appliedAt *time.Time) error
	ExistsForJob(ctx context.Context, userId, jobID string) (bool, error)
}
