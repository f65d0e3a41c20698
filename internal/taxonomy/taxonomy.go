// Package taxonomy holds the static skill and domain tables used by CV
// parsing and job ingestion. The tables are read-only after init.
package taxonomy

// SkillEntry maps a canonical skill identifier to the textual synonyms that
// imply it in free text.
type SkillEntry struct {
	ID       string
	Keywords []string
}

// Skills is the canonical skill table, grouped roughly by area. Order only
// matters for deterministic extraction output, not for semantics.
var Skills = []SkillEntry{
	// Programming languages
	{ID: "javascript", Keywords: []string{"javascript", "js", "ecmascript"}},
	{ID: "python", Keywords: []string{"python", "pandas", "numpy"}},
	{ID: "java", Keywords: []string{"java"}},
	{ID: "csharp", Keywords: []string{"c#", "csharp", "c sharp"}},
	{ID: "cpp", Keywords: []string{"c++", "cpp"}},
	{ID: "typescript", Keywords: []string{"typescript", "ts"}},
	{ID: "go", Keywords: []string{"golang", "go"}},
	{ID: "rust", Keywords: []string{"rust"}},
	{ID: "ruby", Keywords: []string{"ruby"}},
	{ID: "php", Keywords: []string{"php"}},
	{ID: "swift", Keywords: []string{"swift"}},
	{ID: "kotlin", Keywords: []string{"kotlin"}},

	// Frontend
	{ID: "react", Keywords: []string{"react", "reactjs", "react.js"}},
	{ID: "vue", Keywords: []string{"vue", "vuejs", "vue.js"}},
	{ID: "angular", Keywords: []string{"angular", "angularjs"}},
	{ID: "nextjs", Keywords: []string{"nextjs", "next.js", "next"}},
	{ID: "html", Keywords: []string{"html", "html5"}},
	{ID: "css", Keywords: []string{"css", "css3", "scss", "sass"}},
	{ID: "tailwind", Keywords: []string{"tailwind", "tailwindcss"}},

	// Backend
	{ID: "nodejs", Keywords: []string{"node", "nodejs", "node.js"}},
	{ID: "express", Keywords: []string{"express", "expressjs"}},
	{ID: "django", Keywords: []string{"django"}},
	{ID: "flask", Keywords: []string{"flask"}},
	{ID: "fastapi", Keywords: []string{"fastapi"}},
	{ID: "spring", Keywords: []string{"spring", "springboot"}},
	{ID: "rails", Keywords: []string{"rails", "ruby on rails"}},

	// Databases
	{ID: "mysql", Keywords: []string{"mysql"}},
	{ID: "postgresql", Keywords: []string{"postgresql", "postgres"}},
	{ID: "mongodb", Keywords: []string{"mongodb", "mongo"}},
	{ID: "redis", Keywords: []string{"redis"}},
	{ID: "sqlite", Keywords: []string{"sqlite"}},
	{ID: "elasticsearch", Keywords: []string{"elasticsearch", "elastic"}},

	// Cloud & DevOps
	{ID: "aws", Keywords: []string{"aws", "amazon web services"}},
	{ID: "gcp", Keywords: []string{"gcp", "google cloud"}},
	{ID: "azure", Keywords: []string{"azure"}},
	{ID: "docker", Keywords: []string{"docker"}},
	{ID: "kubernetes", Keywords: []string{"kubernetes", "k8s"}},
	{ID: "terraform", Keywords: []string{"terraform"}},
	{ID: "jenkins", Keywords: []string{"jenkins"}},
	{ID: "github", Keywords: []string{"github", "git"}},

	// Data & ML
	{ID: "tensorflow", Keywords: []string{"tensorflow"}},
	{ID: "pytorch", Keywords: []string{"pytorch"}},
	{ID: "machine learning", Keywords: []string{"machine learning", "ml"}},
	{ID: "data analysis", Keywords: []string{"data analysis", "data analyst"}},
	{ID: "sql", Keywords: []string{"sql", "mysql", "postgresql"}},

	// Other
	{ID: "rest api", Keywords: []string{"rest", "rest api", "restful"}},
	{ID: "graphql", Keywords: []string{"graphql", "gql"}},
	{ID: "agile", Keywords: []string{"agile", "scrum"}},
	{ID: "git", Keywords: []string{"git", "github", "gitlab"}},
	{ID: "linux", Keywords: []string{"linux", "unix"}},
}

// DomainEntry maps a job-family label to the canonical skills characteristic
// of it. Declaration order is the tie-break order for inference output.
type DomainEntry struct {
	ID     string
	Skills []string
}

// Domains is the domain table in declared order.
var Domains = []DomainEntry{
	{ID: "frontend", Skills: []string{"react", "vue", "angular", "javascript", "typescript", "html", "css", "nextjs"}},
	{ID: "backend", Skills: []string{"nodejs", "python", "java", "csharp", "go", "ruby", "php", "express", "django", "flask", "spring"}},
	{ID: "fullstack", Skills: []string{"react", "nodejs", "javascript", "typescript", "express", "mongodb", "postgresql"}},
	{ID: "devops", Skills: []string{"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "jenkins", "github", "linux"}},
	{ID: "data science", Skills: []string{"python", "machine learning", "tensorflow", "pytorch", "data analysis", "sql"}},
	{ID: "machine learning", Skills: []string{"python", "machine learning", "tensorflow", "pytorch", "data analysis"}},
	{ID: "mobile", Skills: []string{"swift", "kotlin", "react", "java"}},
	{ID: "QA", Skills: []string{"testing", "selenium", "cypress", "jest"}},
	{ID: "cloud", Skills: []string{"aws", "azure", "gcp", "docker", "kubernetes"}},
	{ID: "security", Skills: []string{"security", "encryption", "authentication", "oauth"}},
}

// GeneralDomain is the fallback label when no domain reaches the inference
// threshold.
const GeneralDomain = "general"

// inferThreshold is the minimum characteristic-skill overlap for a domain to
// be attributed to a candidate.
const inferThreshold = 2

// InferDomains attributes domains to a candidate skill set. A domain is
// included when at least two of its characteristic skills are present.
// Output follows the Domains declaration order; if nothing qualifies the
// result is exactly ["general"].
func InferDomains(skills []string) []string {
	have := make(map[string]bool, len(skills))
	for _, s := range skills {
		have[s] = true
	}

	var out []string
	for _, d := range Domains {
		count := 0
		for _, s := range d.Skills {
			if have[s] {
				count++
			}
		}
		if count >= inferThreshold {
			out = append(out, d.ID)
		}
	}
	if len(out) == 0 {
		return []string{GeneralDomain}
	}
	return out
}
