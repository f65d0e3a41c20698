package ingest

import "time"

// RunStatus is the lifecycle state of an ingest run.
type RunStatus string

const (
	StatusPending   RunStatus = "pending"
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// Run records one ingest execution for a user.
type Run struct {
	ID           string
	UserID       string
	Query        string
	Location     string
	Status       RunStatus
	JobsFound    int
	JobsAdded    int
	AutoApplied  int
	SourceErrors []string
	StartedAt    time.Time
	FinishedAt   *time.Time
}
