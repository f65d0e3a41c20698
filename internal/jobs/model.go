package jobs

import (
	"strings"
	"time"
)

// Job is a stored job posting owned by a user.
type Job struct {
	ID           string
	UserID       string
	Title        string
	Company      string
	Location     string
	Salary       string
	JobType      string
	Remote       bool
	Description  string
	Requirements []string
	Source       string
	URL          string
	PostedDate   string
	Domain       string
	MatchScore   int
	DedupeKey    string
	ScrapedAt    time.Time
}

// DedupeKey identifies a posting by case-folded title and company.
func DedupeKey(title, company string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + strings.ToLower(strings.TrimSpace(company))
}
