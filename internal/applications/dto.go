package applications

import "time"

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ApplicationID string     `json:"applicationId"`
	JobID         string     `json:"jobId"`
	Status        Status     `json:"status"`
	AppliedAt     *time.Time `json:"appliedAt,omitempty"`
	Notes         string     `json:"notes"`
	CoverLetter   string     `json:"coverLetter,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

func toResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		Status:        app.Status,
		AppliedAt:     app.AppliedAt,
		Notes:         app.Notes,
		CoverLetter:   app.CoverLetter,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

// DetailResponse is an application with its job's headline fields.
type DetailResponse struct {
	ApplicationResponse
	JobTitle   string `json:"jobTitle"`
	JobCompany string `json:"jobCompany"`
}

func toDetailResponses(list []Detail) []DetailResponse {
	out := make([]DetailResponse, 0, len(list))
	for _, d := range list {
		out = append(out, DetailResponse{
			ApplicationResponse: toResponse(d.Application),
			JobTitle:            d.JobTitle,
			JobCompany:          d.JobCompany,
		})
	}
	return out
}

// SuggestionResponse is a job annotated with its eligibility decision.
type SuggestionResponse struct {
	JobID          string   `json:"jobId"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Location       string   `json:"location"`
	Remote         bool     `json:"remote"`
	URL            string   `json:"url"`
	Domain         string   `json:"domain"`
	ShouldApply    bool     `json:"shouldApply"`
	Reason         string   `json:"reason"`
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills"`
}

func toSuggestionResponse(s Suggestion) SuggestionResponse {
	matching := s.Decision.MatchingSkills
	if matching == nil {
		matching = []string{}
	}
	return SuggestionResponse{
		JobID:          s.Job.ID,
		Title:          s.Job.Title,
		Company:        s.Job.Company,
		Location:       s.Job.Location,
		Remote:         s.Job.Remote,
		URL:            s.Job.URL,
		Domain:         s.Job.Domain,
		ShouldApply:    s.Decision.ShouldApply,
		Reason:         s.Decision.Reason,
		MatchScore:     s.Decision.MatchScore,
		MatchingSkills: matching,
	}
}
