package jobs

import "time"

// JobResponse is the outward-facing representation of a job.
type JobResponse struct {
	JobID        string    `json:"jobId"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	JobType      string    `json:"jobType"`
	Remote       bool      `json:"remote"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	PostedDate   string    `json:"postedDate"`
	Domain       string    `json:"domain"`
	MatchScore   int       `json:"matchScore"`
	ScrapedAt    time.Time `json:"scrapedAt"`
}

func toResponse(job Job) JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return JobResponse{
		JobID:        job.ID,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Salary:       job.Salary,
		JobType:      job.JobType,
		Remote:       job.Remote,
		Description:  job.Description,
		Requirements: requirements,
		Source:       job.Source,
		URL:          job.URL,
		PostedDate:   job.PostedDate,
		Domain:       job.Domain,
		MatchScore:   job.MatchScore,
		ScrapedAt:    job.ScrapedAt,
	}
}

func toResponses(list []Job) []JobResponse {
	out := make([]JobResponse, 0, len(list))
	for _, job := range list {
		out = append(out, toResponse(job))
	}
	return out
}
