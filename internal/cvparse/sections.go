package cvparse

import "strings"

// sectionState tracks which resume section the line walker is inside.
type sectionState int

const (
	outside sectionState = iota
	inExperience
	inEducation
)

var (
	experienceHeads = []string{"experience", "employment", "work history", "professional experience"}
	educationHeads  = []string{"education", "academic", "degree", "university", "college"}
	summaryHeads    = []string{"summary", "objective", "profile"}
)

func containsAny(line string, heads []string) bool {
	for _, h := range heads {
		if strings.Contains(line, h) {
			return true
		}
	}
	return false
}

// isSectionBreak reports whether a raw line looks like a new section header:
// an ALL-CAPS run of letters and spaces.
func isSectionBreak(raw string) bool {
	return allCapsRe.MatchString(raw)
}

// extractExperience and extractEducation share a single walk over the lines
// with an explicit state machine instead of per-section rescans.
func extractExperience(text string) []Entry {
	exp, _ := walkSections(text)
	return exp
}

func extractEducation(text string) []Entry {
	_, edu := walkSections(text)
	return edu
}

func walkSections(text string) (experience, education []Entry) {
	state := outside

	for _, rawLine := range strings.Split(text, "\n") {
		raw := strings.TrimSpace(rawLine)
		lower := strings.ToLower(raw)

		switch state {
		case inExperience:
			if isSectionBreak(raw) || strings.Contains(lower, "education") || strings.Contains(lower, "skills") {
				state = outside
				if containsAny(lower, educationHeads) {
					state = inEducation
				}
				continue
			}
			if len(lower) > 10 && len(experience) < maxExperienceRows &&
				(jobLineRe.MatchString(lower) || yearRangeRe.MatchString(lower)) {
				experience = append(experience, Entry{Description: raw})
			}

		case inEducation:
			if isSectionBreak(raw) || strings.Contains(lower, "experience") || strings.Contains(lower, "skills") {
				state = outside
				if containsAny(lower, experienceHeads) {
					state = inExperience
				}
				continue
			}
			if len(raw) > 5 && len(education) < maxEducationRows {
				education = append(education, Entry{Description: raw})
			}

		default:
			if containsAny(lower, experienceHeads) {
				state = inExperience
			} else if containsAny(lower, educationHeads) {
				state = inEducation
			}
		}
	}
	return experience, education
}

// extractSummary finds a summary/objective/profile heading and joins up to
// the next four non-blank lines, stopping early at an experience mention.
// Without such a section it falls back to the second and third non-blank
// lines of the document.
func extractSummary(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	for i, line := range lines {
		if !containsAny(strings.ToLower(line), summaryHeads) {
			continue
		}
		var collected []string
		for j := i + 1; j < len(lines) && j <= i+maxSummaryLines; j++ {
			if strings.Contains(strings.ToLower(lines[j]), "experience") {
				break
			}
			collected = append(collected, lines[j])
		}
		if len(collected) > 0 {
			return truncate(strings.Join(collected, " "), maxSummaryLen)
		}
	}

	if len(lines) <= 1 {
		return ""
	}
	end := 3
	if end > len(lines) {
		end = len(lines)
	}
	return truncate(strings.Join(lines[1:end], " "), maxSummaryLen)
}
