package settings

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]string // userId -> key -> value
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]map[string]string),
	}
}

// GetAll returns all stored settings for a user.
func (r *MemoryRepo) GetAll(ctx context.Context, userId string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.data[userId]))
	for k, v := range r.data[userId] {
		out[k] = v
	}
	return out, nil
}

// Set stores or overwrites one setting for a user.
func (r *MemoryRepo) Set(ctx context.Context, userId, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data[userId] == nil {
		r.data[userId] = make(map[string]string)
	}
	r.data[userId][key] = value
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
