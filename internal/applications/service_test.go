package applications

import (
	"context"
	"strings"
	"testing"

	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/profiles"
	"jobtrack-backend/internal/settings"
)

const resumeText = `Jane Smith
jane.smith@example.com

SUMMARY
Backend engineer focused on reliable services.

SKILLS
Go, PostgreSQL, Docker, Kubernetes, AWS
`

func newTestService(t *testing.T) (*Service, *profiles.Service, *jobs.Service, *settings.Service) {
	t.Helper()
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	jobsSvc := &jobs.Service{Repo: jobs.NewMemoryRepo(), Profiles: profilesSvc}
	settingsSvc := &settings.Service{Repo: settings.NewMemoryRepo()}
	svc := &Service{
		Repo:     NewMemoryRepo(),
		Jobs:     jobsSvc,
		Profiles: profilesSvc,
		Settings: settingsSvc,
	}
	return svc, profilesSvc, jobsSvc, settingsSvc
}

func TestCreateAndList(t *testing.T) {
	svc, _, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	job, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	app, err := svc.Create(ctx, "user-1", job.ID, "found via feed")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if app.Status != StatusPending {
		t.Fatalf("expected pending status, got %s", app.Status)
	}

	list, err := svc.List(ctx, "user-1", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].ID != app.ID {
		t.Fatalf("unexpected list: %v", list)
	}

	list, err = svc.List(ctx, "user-1", StatusApplied)
	if err != nil {
		t.Fatalf("List applied: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no applied applications, got %d", len(list))
	}
}

func TestCreateUnknownJob(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.Create(context.Background(), "user-1", "missing-job", ""); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDuplicate(t *testing.T) {
	svc, _, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	job, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	if _, err := svc.Create(ctx, "user-1", job.ID, ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "user-1", job.ID, ""); err != ErrDuplicate {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateStatusAppliedStampsTime(t *testing.T) {
	svc, _, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	job, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{Title: "Backend Engineer", Company: "Acme"})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}
	app, err := svc.Create(ctx, "user-1", job.ID, "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, "user-1", app.ID, StatusApplied)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != StatusApplied {
		t.Fatalf("expected applied, got %s", updated.Status)
	}
	if updated.AppliedAt == nil {
		t.Fatal("expected appliedAt stamped")
	}

	if _, err := svc.UpdateStatus(ctx, "user-1", app.ID, Status("ghosted")); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}
}

func TestSuggestionsRequireProfile(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	if _, err := svc.Suggestions(context.Background(), "user-1"); err != ErrNoProfile {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
}

func TestSuggestionsOrderedByScore(t *testing.T) {
	svc, profilesSvc, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := profilesSvc.ParseText(ctx, "user-1", resumeText); err != nil {
		t.Fatalf("parse profile: %v", err)
	}

	seed := []jobs.CreateInput{
		{Title: "Backend Engineer", Company: "Acme", Requirements: []string{"Go", "PostgreSQL"}},
		{Title: "Platform Engineer", Company: "Globex", Requirements: []string{"Go", "Rust", "Erlang"}},
		{Title: "iOS Developer", Company: "Initech", Requirements: []string{"Swift", "Objective-C"}},
	}
	for _, in := range seed {
		if _, err := jobsSvc.Create(ctx, "user-1", in); err != nil {
			t.Fatalf("create job %q: %v", in.Title, err)
		}
	}

	suggestions, err := svc.Suggestions(ctx, "user-1")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 eligible jobs, got %d", len(suggestions))
	}
	if suggestions[0].Job.Title != "Backend Engineer" {
		t.Fatalf("expected best match first, got %q", suggestions[0].Job.Title)
	}
	if suggestions[0].Decision.MatchScore != 100 {
		t.Fatalf("expected score 100, got %d", suggestions[0].Decision.MatchScore)
	}
	if !strings.HasPrefix(suggestions[0].Decision.Reason, "Good match!") {
		t.Fatalf("unexpected reason: %q", suggestions[0].Decision.Reason)
	}
}

func TestSuggestionsHonorTargetDomains(t *testing.T) {
	svc, profilesSvc, jobsSvc, settingsSvc := newTestService(t)
	ctx := context.Background()

	if _, err := profilesSvc.ParseText(ctx, "user-1", resumeText); err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	domains := []string{"frontend"}
	if _, err := settingsSvc.Update(ctx, "user-1", settings.UpdateRequest{TargetDomains: &domains}); err != nil {
		t.Fatalf("update settings: %v", err)
	}

	if _, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Requirements: []string{"Go"},
	}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	suggestions, err := svc.Suggestions(ctx, "user-1")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected domain gate to exclude job, got %d suggestions", len(suggestions))
	}
}

func TestCoverLetterInterpolatesProfileAndJob(t *testing.T) {
	svc, profilesSvc, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := profilesSvc.ParseText(ctx, "user-1", resumeText); err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	job, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{
		Title:   "Backend Engineer",
		Company: "Acme",
	})
	if err != nil {
		t.Fatalf("create job: %v", err)
	}

	letter, err := svc.CoverLetter(ctx, "user-1", job.ID)
	if err != nil {
		t.Fatalf("CoverLetter: %v", err)
	}
	if !strings.Contains(letter, "Backend Engineer position at Acme") {
		t.Fatalf("expected job interpolation, got %q", letter)
	}
	if !strings.Contains(letter, "Jane Smith") {
		t.Fatalf("expected candidate name, got %q", letter)
	}
}

func TestAutoApplyDisabledByDefault(t *testing.T) {
	svc, profilesSvc, jobsSvc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := profilesSvc.ParseText(ctx, "user-1", resumeText); err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	if _, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Requirements: []string{"Go"},
	}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	created, err := svc.AutoApply(ctx, "user-1")
	if err != nil {
		t.Fatalf("AutoApply: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected no applications while disabled, got %d", created)
	}
}

func TestAutoApplyCreatesPendingApplications(t *testing.T) {
	svc, profilesSvc, jobsSvc, settingsSvc := newTestService(t)
	ctx := context.Background()

	if _, err := profilesSvc.ParseText(ctx, "user-1", resumeText); err != nil {
		t.Fatalf("parse profile: %v", err)
	}
	enabled := true
	if _, err := settingsSvc.Update(ctx, "user-1", settings.UpdateRequest{AutoApplyEnabled: &enabled}); err != nil {
		t.Fatalf("update settings: %v", err)
	}
	if _, err := jobsSvc.Create(ctx, "user-1", jobs.CreateInput{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Requirements: []string{"Go", "PostgreSQL"},
	}); err != nil {
		t.Fatalf("create job: %v", err)
	}

	created, err := svc.AutoApply(ctx, "user-1")
	if err != nil {
		t.Fatalf("AutoApply: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected 1 application, got %d", created)
	}

	list, err := svc.List(ctx, "user-1", StatusPending)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 pending application, got %d", len(list))
	}
	if list[0].CoverLetter == "" {
		t.Fatal("expected generated cover letter")
	}

	// A second run must not duplicate applications.
	created, err = svc.AutoApply(ctx, "user-1")
	if err != nil {
		t.Fatalf("AutoApply second: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected idempotent second run, got %d", created)
	}
}
