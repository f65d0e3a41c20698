// Package match holds the pure resume-to-job matching engine: a requirement
// coverage scorer and the eligibility policy that gates automatic
// applications. Everything here is synchronous, side-effect free, and total
// over its inputs.
package match

import (
	"math"
	"strings"
)

// NeutralScore is returned for jobs that declare no requirements: treated as
// a coin flip, not as a zero and not as a perfect match.
const NeutralScore = 50

// Score estimates how well a candidate skill set covers a job's requirement
// list, as an integer percentage of requirements matched.
//
// A requirement counts as matched when any candidate skill is a substring of
// it or it is a substring of any candidate skill, case-folded. The
// containment is deliberately loose so "5+ years SQL" still matches the
// skill "sql". Each requirement is counted at most once.
func Score(skills []string, requirements []string) int {
	if len(skills) == 0 {
		return 0
	}
	if len(requirements) == 0 {
		return NeutralScore
	}

	matched := 0
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		for _, skill := range skills {
			if overlaps(strings.ToLower(skill), reqLower) {
				matched++
				break
			}
		}
	}
	return percent(matched, len(requirements))
}

// MatchingSkills returns the candidate skills that overlap at least one job
// requirement. This is the skill-side view of the same containment rule
// Score applies requirement-side; the two can disagree in count, which the
// policy relies on.
func MatchingSkills(skills []string, requirements []string) []string {
	var out []string
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		for _, req := range requirements {
			if overlaps(skillLower, strings.ToLower(req)) {
				out = append(out, skill)
				break
			}
		}
	}
	return out
}

// overlaps reports bidirectional substring containment between a skill and a
// requirement, both already case-folded.
func overlaps(skill, requirement string) bool {
	return strings.Contains(requirement, skill) || strings.Contains(skill, requirement)
}

func percent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
