package taxonomy

import "strings"

// titleDomain pairs a domain with the job-title fragments that imply it.
type titleDomain struct {
	domain   string
	patterns []string
}

// titleDomains is checked in order; the first fragment hit wins.
var titleDomains = []titleDomain{
	{"frontend", []string{"frontend", "front-end", "react", "vue", "angular", "ui developer", "ui engineer"}},
	{"backend", []string{"backend", "back-end", "api", "server", "python", "java", "node"}},
	{"fullstack", []string{"fullstack", "full-stack", "full stack"}},
	{"devops", []string{"devops", "sre", "site reliability", "cloud", "infrastructure"}},
	{"data science", []string{"data scientist", "data analyst", "data engineer", "analytics"}},
	{"machine learning", []string{"machine learning", "ml engineer", "ai", "deep learning"}},
	{"mobile", []string{"mobile", "ios", "android", "flutter", "react native"}},
	{"qa", []string{"qa", "quality", "tester", "automation", "selenium"}},
	{"security", []string{"security", "cybersecurity", "infosec", "penetration"}},
}

// DomainForTitle classifies a job title into a coarse domain label. Used by
// ingestion normalization where postings rarely declare a domain themselves.
func DomainForTitle(title string) string {
	lower := strings.ToLower(title)
	for _, td := range titleDomains {
		for _, p := range td.patterns {
			if strings.Contains(lower, p) {
				return td.domain
			}
		}
	}
	return GeneralDomain
}
