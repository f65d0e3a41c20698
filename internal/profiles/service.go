package profiles

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobtrack-backend/internal/cvparse"
	"jobtrack-backend/internal/extract"
	"jobtrack-backend/internal/match"
	"jobtrack-backend/internal/shared/storage/object"
	"jobtrack-backend/internal/shared/telemetry"
	"jobtrack-backend/internal/taxonomy"
)

// Rescorer recomputes stored job match scores after a profile change.
type Rescorer interface {
	RescoreAll(ctx context.Context, userId string) (int, error)
}

// Service contains business logic for resume profiles.
type Service struct {
	Repo     Repo
	Store    object.ObjectStore
	Rescorer Rescorer
}

// ParseText parses raw resume text and stores it as the user's current profile.
func (s *Service) ParseText(ctx context.Context, userId, text string) (Profile, error) {
	if strings.TrimSpace(text) == "" {
		return Profile{}, ErrInvalidInput
	}

	parsed := cvparse.Parse(text)
	profile := fromParsed(userId, parsed, text, "")

	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, err
	}

	s.rescore(ctx, userId)
	return profile, nil
}

// Upload stores a resume file, extracts its text, and parses it into the
// user's current profile.
func (s *Service) Upload(ctx context.Context, userId, fileName string, r io.Reader) (Profile, error) {
	if fileName == "" {
		return Profile{}, ErrInvalidInput
	}
	if s.Store == nil {
		return Profile{}, errors.New("object store not configured")
	}

	fileKey, _, mimeType, err := s.Store.Save(ctx, userId, fileName, r)
	if err != nil {
		return Profile{}, err
	}

	text, err := extract.ExtractText(ctx, s.Store, fileKey, mimeType, fileName)
	if err != nil {
		return Profile{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Profile{}, ErrInvalidInput
	}

	parsed := cvparse.Parse(text)
	profile := fromParsed(userId, parsed, text, fileKey)

	if err := s.Repo.Create(ctx, profile); err != nil {
		return Profile{}, err
	}

	s.rescore(ctx, userId)
	return profile, nil
}

// Current returns the user's current profile.
func (s *Service) Current(ctx context.Context, userId string) (Profile, error) {
	if userId == "" {
		return Profile{}, errors.New("user id required")
	}
	return s.Repo.GetCurrentByUser(ctx, userId)
}

// UpdateInput carries a manual profile edit. Nil fields are left unchanged.
type UpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Summary *string
	Skills  *[]string
}

// Update applies a manual edit on top of the current profile. Editing skills
// re-infers the profile's domains.
func (s *Service) Update(ctx context.Context, userId string, in UpdateInput) (Profile, error) {
	current, err := s.Repo.GetCurrentByUser(ctx, userId)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	now := time.Now().UTC()
	updated := current
	updated.ID = uuid.NewString()
	updated.UserID = userId
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = now
	}
	updated.UpdatedAt = now

	if in.Name != nil {
		updated.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		updated.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		updated.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Summary != nil {
		updated.Summary = strings.TrimSpace(*in.Summary)
	}
	if in.Skills != nil {
		updated.Skills = normalizeSkills(*in.Skills)
	}
	if in.Skills != nil || updated.Domains == nil {
		updated.Domains = taxonomy.InferDomains(updated.Skills)
	}

	if err := s.Repo.Create(ctx, updated); err != nil {
		return Profile{}, err
	}

	if in.Skills != nil {
		s.rescore(ctx, userId)
	}
	return updated, nil
}

// CurrentMatchProfile returns the skills and domains of the current profile
// in the shape the match engine consumes. A missing profile yields an empty
// match profile, not an error.
func (s *Service) CurrentMatchProfile(ctx context.Context, userId string) (match.Profile, error) {
	current, err := s.Repo.GetCurrentByUser(ctx, userId)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return match.Profile{}, nil
		}
		return match.Profile{}, err
	}
	return match.Profile{
		Skills:  current.Skills,
		Domains: current.Domains,
	}, nil
}

func (s *Service) rescore(ctx context.Context, userId string) {
	if s.Rescorer == nil {
		return
	}
	if _, err := s.Rescorer.RescoreAll(ctx, userId); err != nil {
		telemetry.Warn("profile.rescore_failed", map[string]any{
			"userId": userId,
			"error":  err.Error(),
		})
	}
}

func fromParsed(userId string, parsed cvparse.Profile, rawText, fileKey string) Profile {
	now := time.Now().UTC()
	return Profile{
		ID:         uuid.NewString(),
		UserID:     userId,
		Name:       parsed.Name,
		Email:      parsed.Email,
		Phone:      parsed.Phone,
		Summary:    parsed.Summary,
		Skills:     parsed.Skills,
		Experience: parsed.Experience,
		Education:  parsed.Education,
		Domains:    parsed.Domains,
		RawText:    rawText,
		FileKey:    fileKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		clean := strings.ToLower(strings.TrimSpace(skill))
		if clean == "" {
			continue
		}
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}
