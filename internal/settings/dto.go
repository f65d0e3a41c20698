package settings

// SettingsResponse is the outward-facing representation of user settings.
type SettingsResponse struct {
	TargetDomains    []string `json:"targetDomains"`
	MinMatchScore    int      `json:"minMatchScore"`
	AutoApplyEnabled bool     `json:"autoApplyEnabled"`
}

func toResponse(s Settings) SettingsResponse {
	domains := s.TargetDomains
	if domains == nil {
		domains = []string{}
	}
	return SettingsResponse{
		TargetDomains:    domains,
		MinMatchScore:    s.MinMatchScore,
		AutoApplyEnabled: s.AutoApplyEnabled,
	}
}
