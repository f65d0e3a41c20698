package settings

// Setting keys stored per user.
const (
	KeyTargetDomains    = "target_domains"
	KeyMinMatchScore    = "min_match_score"
	KeyAutoApplyEnabled = "auto_apply_enabled"
)

// Settings holds the typed per-user preferences.
type Settings struct {
	TargetDomains    []string
	MinMatchScore    int
	AutoApplyEnabled bool
}
