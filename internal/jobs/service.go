package jobs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/match"
	"jobtrack-backend/internal/taxonomy"
)

// ProfileProvider supplies the current profile in match form.
type ProfileProvider interface {
	CurrentMatchProfile(ctx context.Context, userId string) (match.Profile, error)
}

// Service contains business logic for jobs.
type Service struct {
	Repo     Repo
	Profiles ProfileProvider
}

// CreateInput is a new job posting before normalization.
type CreateInput struct {
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
}

// Create normalizes and stores a job, scoring it against the current profile.
func (s *Service) Create(ctx context.Context, userId string, in CreateInput) (Job, error) {
	job, err := s.build(ctx, userId, in)
	if err != nil {
		return Job{}, err
	}
	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

func (s *Service) build(ctx context.Context, userId string, in CreateInput) (Job, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Job{}, ErrInvalidInput
	}

	domain := strings.ToLower(strings.TrimSpace(in.Domain))
	if domain == "" {
		domain = taxonomy.DomainForTitle(title)
	}

	requirements := make([]string, 0, len(in.Requirements))
	for _, req := range in.Requirements {
		if clean := strings.TrimSpace(req); clean != "" {
			requirements = append(requirements, clean)
		}
	}

	score := 0
	if s.Profiles != nil {
		profile, err := s.Profiles.CurrentMatchProfile(ctx, userId)
		if err != nil {
			return Job{}, err
		}
		if len(profile.Skills) > 0 {
			score = match.Score(profile.Skills, requirements)
		}
	}

	return Job{
		ID:           uuid.NewString(),
		UserID:       userId,
		Title:        title,
		Company:      strings.TrimSpace(in.Company),
		Location:     strings.TrimSpace(in.Location),
		Salary:       strings.TrimSpace(in.Salary),
		JobType:      strings.TrimSpace(in.JobType),
		Remote:       in.Remote,
		Description:  in.Description,
		Requirements: requirements,
		Source:       strings.TrimSpace(in.Source),
		URL:          strings.TrimSpace(in.URL),
		PostedDate:   strings.TrimSpace(in.PostedDate),
		Domain:       domain,
		MatchScore:   score,
		DedupeKey:    DedupeKey(title, in.Company),
		ScrapedAt:    time.Now().UTC(),
	}, nil
}

// Get returns a job by ID.
func (s *Service) Get(ctx context.Context, userId, jobID string) (Job, error) {
	if jobID == "" {
		return Job{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, jobID)
}

// List returns jobs matching the filters.
func (s *Service) List(ctx context.Context, userId string, filters Filters) ([]Job, error) {
	return s.Repo.List(ctx, userId, filters)
}

// DomainStats returns the job count per domain.
func (s *Service) DomainStats(ctx context.Context, userId string) (map[string]int, error) {
	return s.Repo.CountByDomain(ctx, userId)
}

// RescoreAll recomputes match scores for every stored job against the current
// profile and returns the number of jobs whose score changed.
func (s *Service) RescoreAll(ctx context.Context, userId string) (int, error) {
	if s.Profiles == nil {
		return 0, errors.New("profile provider not configured")
	}
	profile, err := s.Profiles.CurrentMatchProfile(ctx, userId)
	if err != nil {
		return 0, err
	}

	list, err := s.Repo.List(ctx, userId, Filters{})
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, job := range list {
		score := 0
		if len(profile.Skills) > 0 {
			score = match.Score(profile.Skills, job.Requirements)
		}
		if score == job.MatchScore {
			continue
		}
		if err := s.Repo.UpdateScore(ctx, userId, job.ID, score); err != nil {
			return changed, err
		}
		changed++
	}
	return changed, nil
}
