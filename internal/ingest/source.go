package ingest

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const maxRequirements = 10

// Posting is a job offer as returned by a source, before storage.
type Posting struct {
	Title        string
	Company      string
	Location     string
	Salary       string
	JobType      string
	Remote       bool
	Description  string
	Requirements []string
	URL          string
	PostedDate   string
	Source       string
}

// Source fetches job postings from one external board.
type Source interface {
	Name() string
	Fetch(ctx context.Context, query, location string) ([]Posting, error)
}

// ExtractRequirements pulls requirement lines out of an HTML job description
// by collecting list items. Descriptions without lists yield no requirements.
func ExtractRequirements(html string) []string {
	if !strings.Contains(html, "<") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	out := make([]string, 0, maxRequirements)
	doc.Find("li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if len(text) < 3 || len(text) > 200 {
			return true
		}
		out = append(out, text)
		return len(out) < maxRequirements
	})
	if len(out) == 0 {
		return nil
	}
	return out
}
