package settings

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"jobtrack-backend/internal/match"
)

// Service contains business logic for per-user settings.
type Service struct {
	Repo Repo
}

// Get returns the typed settings for a user, applying defaults for unset keys.
func (s *Service) Get(ctx context.Context, userId string) (Settings, error) {
	raw, err := s.Repo.GetAll(ctx, userId)
	if err != nil {
		return Settings{}, err
	}

	out := Settings{
		TargetDomains:    []string{},
		MinMatchScore:    match.DefaultMinScore,
		AutoApplyEnabled: false,
	}

	if v, ok := raw[KeyTargetDomains]; ok && v != "" {
		var domains []string
		if err := json.Unmarshal([]byte(v), &domains); err == nil {
			out.TargetDomains = domains
		}
	}
	if v, ok := raw[KeyMinMatchScore]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			out.MinMatchScore = parsed
		}
	}
	if v, ok := raw[KeyAutoApplyEnabled]; ok {
		out.AutoApplyEnabled = v == "true"
	}

	return out, nil
}

// UpdateRequest carries a partial settings update. Nil fields are left unchanged.
type UpdateRequest struct {
	TargetDomains    *[]string
	MinMatchScore    *int
	AutoApplyEnabled *bool
}

// Update applies a partial update and returns the resulting settings.
func (s *Service) Update(ctx context.Context, userId string, req UpdateRequest) (Settings, error) {
	if req.MinMatchScore != nil && (*req.MinMatchScore < 0 || *req.MinMatchScore > 100) {
		return Settings{}, ErrInvalidInput
	}

	if req.TargetDomains != nil {
		domains := normalizeDomains(*req.TargetDomains)
		encoded, err := json.Marshal(domains)
		if err != nil {
			return Settings{}, err
		}
		if err := s.Repo.Set(ctx, userId, KeyTargetDomains, string(encoded)); err != nil {
			return Settings{}, err
		}
	}
	if req.MinMatchScore != nil {
		if err := s.Repo.Set(ctx, userId, KeyMinMatchScore, strconv.Itoa(*req.MinMatchScore)); err != nil {
			return Settings{}, err
		}
	}
	if req.AutoApplyEnabled != nil {
		if err := s.Repo.Set(ctx, userId, KeyAutoApplyEnabled, strconv.FormatBool(*req.AutoApplyEnabled)); err != nil {
			return Settings{}, err
		}
	}

	return s.Get(ctx, userId)
}

func normalizeDomains(domains []string) []string {
	out := make([]string, 0, len(domains))
	seen := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		clean := strings.ToLower(strings.TrimSpace(d))
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
