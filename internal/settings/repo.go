package settings

import "context"

// Repo defines persistence operations for per-user settings.
type Repo interface {
	GetAll(ctx context.Context, userId string) (map[string]string, error)
	Set(ctx context.Context, userId, key, value string) error
}
