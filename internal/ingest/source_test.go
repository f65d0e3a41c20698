package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractRequirements(t *testing.T) {
	html := `<p>About the role</p>
<ul>
  <li>5+ years building backend services in Go</li>
  <li>Experience with PostgreSQL and Redis</li>
  <li>x</li>
</ul>`

	got := ExtractRequirements(html)
	if len(got) != 2 {
		t.Fatalf("expected 2 requirements, got %v", got)
	}
	if got[0] != "5+ years building backend services in Go" {
		t.Fatalf("unexpected first requirement: %q", got[0])
	}
}

func TestExtractRequirementsCap(t *testing.T) {
	html := "<ul>"
	for i := 0; i < 15; i++ {
		html += "<li>Requirement line number here</li>"
	}
	html += "</ul>"

	got := ExtractRequirements(html)
	if len(got) != maxRequirements {
		t.Fatalf("expected %d requirements, got %d", maxRequirements, len(got))
	}
}

func TestExtractRequirementsPlainText(t *testing.T) {
	if got := ExtractRequirements("no markup at all"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestRemotiveFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") != "go" {
			t.Errorf("expected search=go, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[
			{"title":"Go Developer","company_name":"Acme","candidate_required_location":"Worldwide","salary":"$100k","job_type":"full_time","url":"https://example.com/1","publication_date":"2026-08-01","description":"<ul><li>Build services in Go</li></ul>"},
			{"title":"Go Engineer","company_name":"Globex","candidate_required_location":"USA Only","url":"https://example.com/2","description":"plain"}
		]}`))
	}))
	defer srv.Close()

	src := &RemotiveSource{Client: srv.Client(), BaseURL: srv.URL}
	got, err := src.Fetch(context.Background(), "go", "worldwide")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected location filter to keep 1 posting, got %d", len(got))
	}
	posting := got[0]
	if posting.Company != "Acme" || !posting.Remote {
		t.Fatalf("unexpected posting: %+v", posting)
	}
	if len(posting.Requirements) != 1 || posting.Requirements[0] != "Build services in Go" {
		t.Fatalf("unexpected requirements: %v", posting.Requirements)
	}
}

func TestRemotiveFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	src := &RemotiveSource{Client: srv.Client(), BaseURL: srv.URL}
	if _, err := src.Fetch(context.Background(), "go", ""); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestArbeitnowFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[
			{"slug":"backend-engineer","company_name":"Initech","title":"Backend Engineer","description":"<ul><li>Ship reliable Go services</li></ul>","remote":true,"url":"https://example.com/a","job_types":["full_time"],"location":"Berlin","created_at":1754006400},
			{"slug":"designer","company_name":"Initech","title":"Product Designer","description":"","remote":false,"url":"https://example.com/b","location":"Berlin"}
		]}`))
	}))
	defer srv.Close()

	src := &ArbeitnowSource{Client: srv.Client(), BaseURL: srv.URL}
	got, err := src.Fetch(context.Background(), "engineer", "berlin")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected query filter to keep 1 posting, got %d", len(got))
	}
	posting := got[0]
	if posting.Title != "Backend Engineer" || posting.JobType != "full_time" {
		t.Fatalf("unexpected posting: %+v", posting)
	}
	if posting.PostedDate != "2025-08-01" {
		t.Fatalf("unexpected posted date: %q", posting.PostedDate)
	}
}
