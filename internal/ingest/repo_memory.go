package ingest

import (
	"context"
	"sort"
	"sync"
)

// MemoryRunRepo is an in-memory implementation of RunRepo.
type MemoryRunRepo struct {
	mu   sync.RWMutex
	data map[string][]Run // userId -> runs
}

// NewMemoryRunRepo constructs a MemoryRunRepo.
func NewMemoryRunRepo() *MemoryRunRepo {
	return &MemoryRunRepo{
		data: make(map[string][]Run),
	}
}

// Create stores a new run.
func (r *MemoryRunRepo) Create(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[run.UserID] = append(r.data[run.UserID], run)
	return nil
}

// Update overwrites a stored run.
func (r *MemoryRunRepo) Update(ctx context.Context, run Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[run.UserID]
	for i := range list {
		if list[i].ID == run.ID {
			list[i] = run
			r.data[run.UserID] = list
			return nil
		}
	}
	return ErrNotFound
}

// GetByID returns a run by ID for a user.
func (r *MemoryRunRepo) GetByID(ctx context.Context, userId, runID string) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, run := range r.data[userId] {
		if run.ID == runID {
			return run, nil
		}
	}
	return Run{}, ErrNotFound
}

// ListByUser returns runs newest first, honoring limit.
func (r *MemoryRunRepo) ListByUser(ctx context.Context, userId string, limit int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Run, len(r.data[userId]))
	copy(out, r.data[userId])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ RunRepo = (*MemoryRunRepo)(nil)
