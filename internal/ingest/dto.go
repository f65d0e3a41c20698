package ingest

import "time"

// RunResponse is the API representation of an ingest run.
type RunResponse struct {
	ID           string   `json:"id"`
	Query        string   `json:"query"`
	Location     string   `json:"location"`
	Status       string   `json:"status"`
	JobsFound    int      `json:"jobsFound"`
	JobsAdded    int      `json:"jobsAdded"`
	AutoApplied  int      `json:"autoApplied"`
	SourceErrors []string `json:"sourceErrors"`
	StartedAt    string   `json:"startedAt"`
	FinishedAt   *string  `json:"finishedAt"`
}

func toResponse(run Run) RunResponse {
	resp := RunResponse{
		ID:           run.ID,
		Query:        run.Query,
		Location:     run.Location,
		Status:       string(run.Status),
		JobsFound:    run.JobsFound,
		JobsAdded:    run.JobsAdded,
		AutoApplied:  run.AutoApplied,
		SourceErrors: run.SourceErrors,
		StartedAt:    run.StartedAt.Format(time.RFC3339),
	}
	if resp.SourceErrors == nil {
		resp.SourceErrors = []string{}
	}
	if run.FinishedAt != nil {
		finished := run.FinishedAt.Format(time.RFC3339)
		resp.FinishedAt = &finished
	}
	return resp
}

func toResponses(runs []Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, toResponse(run))
	}
	return out
}
