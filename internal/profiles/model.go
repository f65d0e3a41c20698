package profiles

import (
	"time"

	"jobtrack-backend/internal/cvparse"
)

// Profile is a user's parsed resume, the basis for job matching.
type Profile struct {
	ID         string
	UserID     string
	Name       string
	Email      string
	Phone      string
	Summary    string
	Skills     []string
	Experience []cvparse.Entry
	Education  []cvparse.Entry
	Domains    []string
	RawText    string
	FileKey    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
