package profiles

import (
	"time"

	"jobtrack-backend/internal/cvparse"
)

// ProfileResponse is the outward-facing representation of a profile.
type ProfileResponse struct {
	ProfileID  string          `json:"profileId"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Summary    string          `json:"summary"`
	Skills     []string        `json:"skills"`
	Experience []cvparse.Entry `json:"experience"`
	Education  []cvparse.Entry `json:"education"`
	Domains    []string        `json:"domains"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toResponse(p Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	domains := p.Domains
	if domains == nil {
		domains = []string{}
	}
	experience := p.Experience
	if experience == nil {
		experience = []cvparse.Entry{}
	}
	education := p.Education
	if education == nil {
		education = []cvparse.Entry{}
	}
	return ProfileResponse{
		ProfileID:  p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Summary:    p.Summary,
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Domains:    domains,
		UpdatedAt:  p.UpdatedAt,
	}
}
