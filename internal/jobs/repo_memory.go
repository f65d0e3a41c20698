package jobs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Job // userId -> jobs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Job),
	}
}

// Create stores a job, rejecting duplicates by dedupe key.
func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data[job.UserID] {
		if existing.DedupeKey == job.DedupeKey {
			return ErrDuplicate
		}
	}
	r.data[job.UserID] = append(r.data[job.UserID], job)
	return nil
}

// GetByID returns a job by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, job := range r.data[userId] {
		if job.ID == jobID {
			return job, nil
		}
	}
	return Job{}, ErrNotFound
}

// List returns jobs matching the filters, newest first.
func (r *MemoryRepo) List(ctx context.Context, userId string, filters Filters) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Job, 0)
	for _, job := range r.data[userId] {
		if filters.Domain != "" && job.Domain != filters.Domain {
			continue
		}
		if filters.Remote != nil && job.Remote != *filters.Remote {
			continue
		}
		if filters.MinScore != nil && job.MatchScore < *filters.MinScore {
			continue
		}
		out = append(out, job)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScrapedAt.After(out[j].ScrapedAt)
	})
	return out, nil
}

// CountByDomain returns the number of stored jobs per domain.
func (r *MemoryRepo) CountByDomain(ctx context.Context, userId string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]int)
	for _, job := range r.data[userId] {
		domain := job.Domain
		if domain == "" {
			domain = "unknown"
		}
		out[domain]++
	}
	return out, nil
}

// UpdateScore updates the stored match score for one job.
func (r *MemoryRepo) UpdateScore(ctx context.Context, userId, jobID string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == jobID {
			list[i].MatchScore = score
			r.data[userId] = list
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
