package applications

import "time"

// Status is the tracked state of an application.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

// ValidStatus reports whether s is one of the known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Application tracks one user's application to one job.
type Application struct {
	ID          string
	UserID      string
	JobID       string
	Status      Status
	AppliedAt   *time.Time
	Notes       string
	CoverLetter string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
