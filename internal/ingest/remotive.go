package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const remotiveEndpoint = "https://remotive.com/api/remote-jobs"

// RemotiveSource fetches remote job postings from the Remotive public API.
type RemotiveSource struct {
	Client    *http.Client
	UserAgent string
	BaseURL   string
}

type remotiveResponse struct {
	Jobs []remotiveJob `json:"jobs"`
}

type remotiveJob struct {
	Title           string `json:"title"`
	CompanyName     string `json:"company_name"`
	Location        string `json:"candidate_required_location"`
	Salary          string `json:"salary"`
	JobType         string `json:"job_type"`
	URL             string `json:"url"`
	PublicationDate string `json:"publication_date"`
	Description     string `json:"description"`
}

func (s *RemotiveSource) Name() string { return "remotive" }

func (s *RemotiveSource) Fetch(ctx context.Context, query, location string) ([]Posting, error) {
	base := s.BaseURL
	if base == "" {
		base = remotiveEndpoint
	}
	endpoint := base
	if query != "" {
		endpoint += "?search=" + url.QueryEscape(query)
	}

	var payload remotiveResponse
	if err := fetchJSON(ctx, s.Client, s.UserAgent, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("remotive: %w", err)
	}

	out := make([]Posting, 0, len(payload.Jobs))
	for _, job := range payload.Jobs {
		if location != "" && !strings.Contains(strings.ToLower(job.Location), strings.ToLower(location)) {
			continue
		}
		out = append(out, Posting{
			Title:        job.Title,
			Company:      job.CompanyName,
			Location:     job.Location,
			Salary:       job.Salary,
			JobType:      job.JobType,
			Remote:       true,
			Description:  job.Description,
			Requirements: ExtractRequirements(job.Description),
			URL:          job.URL,
			PostedDate:   job.PublicationDate,
		})
	}
	return out, nil
}

func fetchJSON(ctx context.Context, client *http.Client, userAgent, endpoint string, dst any) error {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}
