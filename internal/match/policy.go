package match

import (
	"fmt"
	"strings"
)

// DefaultMinScore is the score threshold applied when the caller does not
// configure one.
const DefaultMinScore = 30

// Job is the slice of a job posting the policy needs.
type Job struct {
	Domain       string
	Requirements []string
}

// Profile is the slice of a candidate profile the policy needs.
type Profile struct {
	Skills  []string
	Domains []string
}

// Options tunes a Decide call. Zero MinScore means DefaultMinScore; an empty
// TargetDomains list disables the domain gate.
type Options struct {
	TargetDomains []string
	MinScore      int
}

// Decision is the outcome of the eligibility policy. A false ShouldApply is
// an ordinary result with a human-readable reason, not an error, and callers
// must treat it as a hard stop rather than a retryable condition.
type Decision struct {
	ShouldApply    bool     `json:"shouldApply"`
	MatchScore     int      `json:"matchScore"`
	MatchingSkills []string `json:"matchingSkills,omitempty"`
	Reason         string   `json:"reason"`
}

// Decide runs the sequential eligibility gate: profile presence, optional
// domain filter, then the score threshold. It short-circuits at the first
// failing check.
//
// The domain gate is intentionally asymmetric: target domains match the
// job's domain by substring containment but the candidate's inferred domains
// by exact case-folded equality.
func Decide(job Job, profile Profile, opts Options) Decision {
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	if len(profile.Skills) == 0 {
		return Decision{Reason: "No CV uploaded"}
	}

	if len(opts.TargetDomains) > 0 && !domainMatches(job.Domain, profile.Domains, opts.TargetDomains) {
		return Decision{Reason: "Job domain does not match target domains"}
	}

	matching := MatchingSkills(profile.Skills, job.Requirements)
	score := NeutralScore
	if len(job.Requirements) > 0 {
		score = percent(len(matching), len(job.Requirements))
	}

	if score < minScore {
		return Decision{
			MatchScore: score,
			Reason:     fmt.Sprintf("Low match score (%d%%). Need at least %d%%", score, minScore),
		}
	}

	return Decision{
		ShouldApply:    true,
		MatchScore:     score,
		MatchingSkills: matching,
		Reason:         fmt.Sprintf("Good match! %d skills matched (%d%%)", len(matching), score),
	}
}

func domainMatches(jobDomain string, profileDomains, targets []string) bool {
	jobLower := strings.ToLower(jobDomain)
	for _, target := range targets {
		targetLower := strings.ToLower(target)
		if strings.Contains(jobLower, targetLower) {
			return true
		}
		for _, d := range profileDomains {
			if strings.ToLower(d) == targetLower {
				return true
			}
		}
	}
	return false
}
