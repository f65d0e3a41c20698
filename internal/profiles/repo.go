package profiles

import "context"

// Repo defines persistence operations for profiles. Create supersedes any
// previous current profile for the same user.
type Repo interface {
	Create(ctx context.Context, p Profile) error
	GetCurrentByUser(ctx context.Context, userId string) (Profile, error)
}
