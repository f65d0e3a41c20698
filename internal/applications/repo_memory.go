package applications

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Application // userId -> applications
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Application),
	}
}

// Create stores an application, rejecting a second one for the same job.
func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data[app.UserID] {
		if existing.JobID == app.JobID {
			return ErrDuplicate
		}
	}
	r.data[app.UserID] = append(r.data[app.UserID], app)
	return nil
}

// GetByID returns an application by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, appID string) (Application, error) {
	if err := ctx.Err(); err != nil {
		return Application{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.data[userId] {
		if app.ID == appID {
			return app, nil
		}
	}
	return Application{}, ErrNotFound
}

// List returns applications, optionally filtered by status, newest first.
func (r *MemoryRepo) List(ctx context.Context, userId string, status Status) ([]Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Application, 0)
	for _, app := range r.data[userId] {
		if status != "" && app.Status != status {
			continue
		}
		out = append(out, app)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// UpdateStatus changes the status of an application.
func (r *MemoryRepo) UpdateStatus(ctx context.Context, userId, appID string, status Status, appliedAt *time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == appID {
			list[i].Status = status
			if appliedAt != nil {
				list[i].AppliedAt = appliedAt
			}
			list[i].UpdatedAt = time.Now().UTC()
			r.data[userId] = list
			return nil
		}
	}
	return ErrNotFound
}

// ExistsForJob reports whether the user already applied to the job.
func (r *MemoryRepo) ExistsForJob(ctx context.Context, userId, jobID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, app := range r.data[userId] {
		if app.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

var _ Repo = (*MemoryRepo)(nil)
