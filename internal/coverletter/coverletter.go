// Package coverletter renders a cover-letter string for a job and candidate
// profile. Pure templating: missing fields degrade to fallback phrases, never
// to errors.
package coverletter

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	fallbackSkills  = "various technologies"
	fallbackExcerpt = "your company's innovative approach"
	fallbackName    = "Applicant"

	maxSkills     = 5
	excerptLength = 100
)

// Input carries the fields the letter template interpolates.
type Input struct {
	JobTitle    string
	Company     string
	Description string

	Name    string
	Summary string
	Skills  []string
}

// Render produces the letter. The job description excerpt is HTML-stripped
// before truncation since ingested descriptions frequently carry markup.
func Render(in Input) string {
	skills := fallbackSkills
	if len(in.Skills) > 0 {
		listed := in.Skills
		if len(listed) > maxSkills {
			listed = listed[:maxSkills]
		}
		skills = strings.Join(listed, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear Hiring Manager,\n\n")
	fmt.Fprintf(&b,
		"I am writing to express my strong interest in the %s position at %s. With my background in %s, I am confident that I would be a valuable addition to your team.\n\n",
		in.JobTitle, in.Company, skills)

	if summary := strings.TrimSpace(in.Summary); summary != "" {
		fmt.Fprintf(&b, "As a professional with experience in %s...\n\n", truncate(summary, excerptLength))
	}

	excerpt := fallbackExcerpt
	if desc := strings.TrimSpace(StripHTML(in.Description)); desc != "" {
		excerpt = truncate(desc, excerptLength)
	}
	fmt.Fprintf(&b, "I am particularly excited about this opportunity because %s.\n\n", excerpt)

	b.WriteString("I would welcome the opportunity to discuss how my skills and experience align with your needs. Thank you for considering my application.\n\n")

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = fallbackName
	}
	fmt.Fprintf(&b, "Best regards,\n%s", name)

	return b.String()
}

// StripHTML flattens a possibly-HTML fragment to its text content. Plain
// text passes through unchanged apart from whitespace normalization.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return collapseSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}
	return collapseSpace(doc.Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
