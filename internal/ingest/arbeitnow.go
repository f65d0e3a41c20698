package ingest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const arbeitnowEndpoint = "https://www.arbeitnow.com/api/job-board-api"

// ArbeitnowSource fetches job postings from the Arbeitnow public job board API.
// The API has no server-side search, so query and location filtering happens
// on the client.
type ArbeitnowSource struct {
	Client    *http.Client
	UserAgent string
	BaseURL   string
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Slug        string   `json:"slug"`
	CompanyName string   `json:"company_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Remote      bool     `json:"remote"`
	URL         string   `json:"url"`
	Tags        []string `json:"tags"`
	JobTypes    []string `json:"job_types"`
	Location    string   `json:"location"`
	CreatedAt   int64    `json:"created_at"`
}

func (s *ArbeitnowSource) Name() string { return "arbeitnow" }

func (s *ArbeitnowSource) Fetch(ctx context.Context, query, location string) ([]Posting, error) {
	base := s.BaseURL
	if base == "" {
		base = arbeitnowEndpoint
	}

	var payload arbeitnowResponse
	if err := fetchJSON(ctx, s.Client, s.UserAgent, base, &payload); err != nil {
		return nil, fmt.Errorf("arbeitnow: %w", err)
	}

	out := make([]Posting, 0, len(payload.Data))
	for _, job := range payload.Data {
		if query != "" && !strings.Contains(strings.ToLower(job.Title), strings.ToLower(query)) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(location)) {
			continue
		}
		posting := Posting{
			Title:        job.Title,
			Company:      job.CompanyName,
			Location:     job.Location,
			Remote:       job.Remote,
			Description:  job.Description,
			Requirements: ExtractRequirements(job.Description),
			URL:          job.URL,
		}
		if len(job.JobTypes) > 0 {
			posting.JobType = job.JobTypes[0]
		}
		if job.CreatedAt > 0 {
			posting.PostedDate = time.Unix(job.CreatedAt, 0).UTC().Format("2006-01-02")
		}
		out = append(out, posting)
	}
	return out, nil
}
