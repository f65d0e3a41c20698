package applications

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/coverletter"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/match"
	"jobtrack-backend/internal/profiles"
	"jobtrack-backend/internal/settings"
	"jobtrack-backend/internal/shared/metrics"
)

const maxSuggestions = 20

// Service contains business logic for applications.
type Service struct {
	Repo     Repo
	Jobs     *jobs.Service
	Profiles *profiles.Service
	Settings *settings.Service
}

// Create records a new application for a job.
func (s *Service) Create(ctx context.Context, userId, jobID, notes string) (Application, error) {
	if strings.TrimSpace(jobID) == "" {
		return Application{}, ErrInvalidInput
	}

	if _, err := s.Jobs.Get(ctx, userId, jobID); err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}

	now := time.Now().UTC()
	app := Application{
		ID:        uuid.NewString(),
		UserID:    userId,
		JobID:     jobID,
		Status:    StatusPending,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}

	metrics.IncApplicationCreated()
	return app, nil
}

// List returns applications, optionally filtered by status.
func (s *Service) List(ctx context.Context, userId string, status Status) ([]Application, error) {
	if status != "" && !ValidStatus(status) {
		return nil, ErrInvalidInput
	}
	return s.Repo.List(ctx, userId, status)
}

// Detail is an application annotated with its job's headline fields.
type Detail struct {
	Application
	JobTitle   string
	JobCompany string
}

// ListWithJobs returns applications with their job title and company attached.
func (s *Service) ListWithJobs(ctx context.Context, userId string, status Status) ([]Detail, error) {
	apps, err := s.List(ctx, userId, status)
	if err != nil {
		return nil, err
	}

	out := make([]Detail, 0, len(apps))
	for _, app := range apps {
		detail := Detail{Application: app}
		job, err := s.Jobs.Get(ctx, userId, app.JobID)
		if err == nil {
			detail.JobTitle = job.Title
			detail.JobCompany = job.Company
		} else if !errors.Is(err, jobs.ErrNotFound) {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

// UpdateStatus moves an application to a new status. Moving to applied stamps
// the applied time.
func (s *Service) UpdateStatus(ctx context.Context, userId, appID string, status Status) (Application, error) {
	if !ValidStatus(status) {
		return Application{}, ErrInvalidInput
	}

	var appliedAt *time.Time
	if status == StatusApplied {
		now := time.Now().UTC()
		appliedAt = &now
	}

	if err := s.Repo.UpdateStatus(ctx, userId, appID, status, appliedAt); err != nil {
		return Application{}, err
	}
	return s.Repo.GetByID(ctx, userId, appID)
}

// Suggestion pairs a job with its eligibility decision.
type Suggestion struct {
	Job      jobs.Job
	Decision match.Decision
}

// Suggestions evaluates every stored job against the current profile and
// settings, returning eligible jobs ordered by score, best first.
func (s *Service) Suggestions(ctx context.Context, userId string) ([]Suggestion, error) {
	profile, err := s.Profiles.CurrentMatchProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if len(profile.Skills) == 0 {
		return nil, ErrNoProfile
	}

	prefs, err := s.Settings.Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	opts := match.Options{
		TargetDomains: prefs.TargetDomains,
		MinScore:      prefs.MinMatchScore,
	}

	list, err := s.Jobs.List(ctx, userId, jobs.Filters{})
	if err != nil {
		return nil, err
	}

	out := make([]Suggestion, 0)
	for _, job := range list {
		decision := match.Decide(match.Job{
			Domain:       job.Domain,
			Requirements: job.Requirements,
		}, profile, opts)
		if !decision.ShouldApply {
			continue
		}
		out = append(out, Suggestion{Job: job, Decision: decision})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Decision.MatchScore > out[j].Decision.MatchScore
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out, nil
}

// CoverLetter generates a cover letter for a job from the current profile.
func (s *Service) CoverLetter(ctx context.Context, userId, jobID string) (string, error) {
	profile, err := s.Profiles.Current(ctx, userId)
	if err != nil {
		if errors.Is(err, profiles.ErrNotFound) {
			return "", ErrNoProfile
		}
		return "", err
	}

	job, err := s.Jobs.Get(ctx, userId, jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	return coverletter.Render(coverletter.Input{
		JobTitle:    job.Title,
		Company:     job.Company,
		Description: job.Description,
		Name:        profile.Name,
		Summary:     profile.Summary,
		Skills:      profile.Skills,
	}), nil
}

// AutoApply records pending applications, with cover letters, for every
// eligible job the user has not applied to yet. It never submits anything
// externally. Returns the number of applications created.
func (s *Service) AutoApply(ctx context.Context, userId string) (int, error) {
	prefs, err := s.Settings.Get(ctx, userId)
	if err != nil {
		return 0, err
	}
	if !prefs.AutoApplyEnabled {
		return 0, nil
	}

	suggestions, err := s.Suggestions(ctx, userId)
	if err != nil {
		if errors.Is(err, ErrNoProfile) {
			return 0, nil
		}
		return 0, err
	}

	created := 0
	for _, suggestion := range suggestions {
		exists, err := s.Repo.ExistsForJob(ctx, userId, suggestion.Job.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		letter, err := s.CoverLetter(ctx, userId, suggestion.Job.ID)
		if err != nil {
			return created, err
		}

		now := time.Now().UTC()
		app := Application{
			ID:          uuid.NewString(),
			UserID:      userId,
			JobID:       suggestion.Job.ID,
			Status:      StatusPending,
			Notes:       suggestion.Decision.Reason,
			CoverLetter: letter,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Repo.Create(ctx, app); err != nil {
			if errors.Is(err, ErrDuplicate) {
				continue
			}
			return created, err
		}
		metrics.IncApplicationCreated()
		created++
	}
	return created, nil
}
