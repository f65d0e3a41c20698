package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/queue"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/telemetry"
)

const defaultJobCap = 100

// Service orchestrates ingest runs: fetching postings from sources,
// storing new jobs, and optionally auto-applying to strong matches.
type Service struct {
	Sources      []Source
	Jobs         *jobs.Service
	Applications *applications.Service
	Runs         RunRepo

	// Queue, when set, defers run execution to the worker. Otherwise
	// runs execute inline in the request goroutine.
	Queue  queue.Client
	JobCap int
}

// Start records a pending run and either enqueues it for the worker or
// executes it inline when no queue is configured.
func (s *Service) Start(ctx context.Context, userId, requestID, query, location string) (Run, error) {
	run := Run{
		ID:           uuid.NewString(),
		UserID:       userId,
		Query:        query,
		Location:     location,
		Status:       StatusPending,
		SourceErrors: []string{},
		StartedAt:    time.Now().UTC(),
	}
	if err := s.Runs.Create(ctx, run); err != nil {
		return Run{}, err
	}

	if s.Queue != nil {
		msg := queue.Message{
			RunID:      run.ID,
			UserID:     userId,
			Query:      query,
			Location:   location,
			RequestID:  requestID,
			EnqueuedAt: run.StartedAt.Format(time.RFC3339),
			Version:    1,
		}
		if err := s.Queue.Send(ctx, msg); err != nil {
			run.Status = StatusFailed
			run.SourceErrors = append(run.SourceErrors, "enqueue failed")
			s.finish(ctx, &run)
			return Run{}, err
		}
		telemetry.Info("ingest.enqueued", map[string]any{
			"runId":  run.ID,
			"userId": userId,
		})
		return run, nil
	}

	return s.Execute(ctx, run.ID, userId)
}

// Execute runs a previously created ingest run to completion.
func (s *Service) Execute(ctx context.Context, runID, userId string) (Run, error) {
	run, err := s.Runs.GetByID(ctx, userId, runID)
	if err != nil {
		return Run{}, err
	}

	metrics.IncIngestStarted()
	start := metrics.NowMillis()

	run.Status = StatusRunning
	if err := s.Runs.Update(ctx, run); err != nil {
		return Run{}, err
	}

	postings := s.collect(ctx, &run)
	run.JobsFound = len(postings)

	limit := s.JobCap
	if limit <= 0 {
		limit = defaultJobCap
	}
	if len(postings) > limit {
		postings = postings[:limit]
	}

	added := 0
	for _, posting := range postings {
		_, err := s.Jobs.Create(ctx, userId, jobs.CreateInput{
			Title:        posting.Title,
			Company:      posting.Company,
			Location:     posting.Location,
			Salary:       posting.Salary,
			JobType:      posting.JobType,
			Remote:       posting.Remote,
			Description:  posting.Description,
			Requirements: posting.Requirements,
			Source:       posting.Source,
			URL:          posting.URL,
			PostedDate:   posting.PostedDate,
		})
		switch {
		case err == nil:
			added++
		case errors.Is(err, jobs.ErrDuplicate), errors.Is(err, jobs.ErrInvalidInput):
			// Already known or unusable posting, move on.
		default:
			run.Status = StatusFailed
			run.JobsAdded = added
			s.finish(ctx, &run)
			metrics.IncIngestFailed()
			return Run{}, err
		}
	}
	run.JobsAdded = added
	metrics.AddJobsIngested(added)

	if s.Applications != nil {
		applied, err := s.Applications.AutoApply(ctx, userId)
		if err != nil {
			telemetry.Warn("ingest.auto_apply_failed", map[string]any{
				"runId": run.ID,
				"error": err.Error(),
			})
		} else {
			run.AutoApplied = applied
		}
	}

	run.Status = StatusCompleted
	if len(run.SourceErrors) == len(s.Sources) && len(s.Sources) > 0 {
		run.Status = StatusFailed
	}
	s.finish(ctx, &run)

	metrics.ObserveIngestDurationMs(metrics.NowMillis() - start)
	if run.Status == StatusFailed {
		metrics.IncIngestFailed()
	} else {
		metrics.IncIngestCompleted()
	}

	telemetry.Info("ingest.finished", map[string]any{
		"runId":       run.ID,
		"userId":      userId,
		"status":      string(run.Status),
		"jobsFound":   run.JobsFound,
		"jobsAdded":   run.JobsAdded,
		"autoApplied": run.AutoApplied,
	})
	return run, nil
}

// collect fetches from every source, suppressing per-source failures so that
// one broken board does not sink the run.
func (s *Service) collect(ctx context.Context, run *Run) []Posting {
	var postings []Posting
	for _, src := range s.Sources {
		found, err := src.Fetch(ctx, run.Query, run.Location)
		if err != nil {
			run.SourceErrors = append(run.SourceErrors, fmt.Sprintf("%s: fetch failed", src.Name()))
			telemetry.Warn("ingest.source_failed", map[string]any{
				"runId":  run.ID,
				"source": src.Name(),
				"error":  err.Error(),
			})
			continue
		}
		for _, posting := range found {
			posting.Source = src.Name()
			postings = append(postings, posting)
		}
	}
	return postings
}

// GetRun returns one run owned by the user.
func (s *Service) GetRun(ctx context.Context, userId, runID string) (Run, error) {
	return s.Runs.GetByID(ctx, userId, runID)
}

// ListRuns returns the user's most recent runs.
func (s *Service) ListRuns(ctx context.Context, userId string, limit int) ([]Run, error) {
	return s.Runs.ListByUser(ctx, userId, limit)
}

func (s *Service) finish(ctx context.Context, run *Run) {
	now := time.Now().UTC()
	run.FinishedAt = &now
	if err := s.Runs.Update(ctx, *run); err != nil {
		telemetry.Error("ingest.run_update_failed", map[string]any{
			"runId": run.ID,
			"error": err.Error(),
		})
	}
}
