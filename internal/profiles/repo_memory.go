package profiles

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Profile // userId -> profiles, last is current
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Profile),
	}
}

// Create appends a profile as the user's new current profile.
func (r *MemoryRepo) Create(ctx context.Context, p Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[p.UserID] = append(r.data[p.UserID], p)
	return nil
}

// GetCurrentByUser returns the user's current profile.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userId string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.data[userId]
	if len(list) == 0 {
		return Profile{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

var _ Repo = (*MemoryRepo)(nil)
