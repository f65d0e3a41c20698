// Package cvparse extracts a structured candidate profile from raw resume
// text. Extraction is best-effort and total: adversarial or unparseable input
// degrades to empty fields, never to an error.
package cvparse

import (
	"regexp"
	"strings"

	"jobtrack-backend/internal/taxonomy"
)

const (
	maxNameLen        = 50
	maxExperienceRows = 10
	maxEducationRows  = 5
	maxSummaryLen     = 500
	maxSummaryLines   = 4
)

// Entry is a loosely parsed experience or education line.
type Entry struct {
	Description string `json:"description"`
}

// Profile is the structured result of parsing resume text.
type Profile struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Domains    []string `json:"domains"`
	Experience []Entry  `json:"experience"`
	Education  []Entry  `json:"education"`
	Summary    string   `json:"summary"`
}

var (
	emailRe = regexp.MustCompile(`[\w.\-]+@[\w.\-]+\.\w+`)
	phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)

	// "Company - Title" style lines and bare year ranges mark experience rows.
	jobLineRe   = regexp.MustCompile(`^(.+?)\s*[-|]\s*(.+)$`)
	yearRangeRe = regexp.MustCompile(`^(\w+)\s*(\d{4})\s*[-–]\s*(\w+)?\s*(\d{4})?$`)

	allCapsRe = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)
)

// skillMatchers holds one compiled word-boundary matcher per synonym keyword,
// built once at init from the taxonomy table.
var skillMatchers = buildSkillMatchers()

type skillMatcher struct {
	id       string
	patterns []*regexp.Regexp
}

func buildSkillMatchers() []skillMatcher {
	out := make([]skillMatcher, 0, len(taxonomy.Skills))
	for _, entry := range taxonomy.Skills {
		m := skillMatcher{id: entry.ID}
		for _, kw := range entry.Keywords {
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(kw)+`\b`))
		}
		out = append(out, m)
	}
	return out
}

// Parse extracts a Profile from raw resume text.
func Parse(text string) Profile {
	lower := strings.ToLower(text)
	skills := extractSkills(lower)

	return Profile{
		Name:       extractName(text),
		Email:      emailRe.FindString(text),
		Phone:      phoneRe.FindString(text),
		Skills:     skills,
		Domains:    taxonomy.InferDomains(skills),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
		Summary:    extractSummary(text),
	}
}

// extractSkills tests every synonym against the lower-cased document with
// word-boundary matching, so "go" does not fire inside "google". A skill is
// reported once no matter how many synonyms hit.
func extractSkills(lowerText string) []string {
	var found []string
	for _, m := range skillMatchers {
		for _, p := range m.patterns {
			if p.MatchString(lowerText) {
				found = append(found, m.id)
				break
			}
		}
	}
	return found
}

// extractName accepts the first non-blank line when it is plausibly a name:
// under 50 characters and free of emails and URLs.
func extractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if len(trimmed) < maxNameLen && !strings.Contains(trimmed, "@") && !strings.Contains(trimmed, "http") {
			return trimmed
		}
		return ""
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
