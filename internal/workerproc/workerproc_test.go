package workerproc

import (
	"context"
	"errors"
	"testing"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/bootstrap"
	"jobtrack-backend/internal/ingest"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/profiles"
	"jobtrack-backend/internal/queue"
	"jobtrack-backend/internal/settings"
)

func TestParseMessageRejectsEmptyBody(t *testing.T) {
	_, _, err := ParseMessage("   ")
	var emptyErr ErrEmptyBody
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}

func TestParseMessageRejectsBadJSON(t *testing.T) {
	_, meta, err := ParseMessage("{not json")
	var decodeErr ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if meta.BodyLen != len("{not json") || meta.BodySHA == "" {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestParseMessageRequiresIdentifiers(t *testing.T) {
	_, _, err := ParseMessage(`{"requestId":"req-1"}`)
	var missingErr ErrMissingRunID
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected ErrMissingRunID, got %v", err)
	}
	if missingErr.RequestID != "req-1" {
		t.Fatalf("expected request id to survive, got %q", missingErr.RequestID)
	}
}

type nopQueue struct{}

func (nopQueue) Send(ctx context.Context, msg queue.Message) error { return nil }

func newTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	jobsSvc := &jobs.Service{Repo: jobs.NewMemoryRepo(), Profiles: profilesSvc}
	appsSvc := &applications.Service{
		Repo:     applications.NewMemoryRepo(),
		Jobs:     jobsSvc,
		Profiles: profilesSvc,
		Settings: &settings.Service{Repo: settings.NewMemoryRepo()},
	}
	return &bootstrap.App{
		IngestService: &ingest.Service{
			Jobs:         jobsSvc,
			Applications: appsSvc,
			Runs:         ingest.NewMemoryRunRepo(),
			Queue:        nopQueue{},
		},
	}
}

func TestHandleMessageExecutesRun(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	run, err := app.IngestService.Start(ctx, "user-1", "req-1", "go", "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	body, err := queue.EncodeMessage(queue.Message{RunID: run.ID, UserID: "user-1", RequestID: "req-1", Version: 1})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	if err := HandleMessage(ctx, app, string(body)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	done, err := app.IngestService.GetRun(ctx, "user-1", run.ID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if done.Status != ingest.StatusCompleted {
		t.Fatalf("expected completed run, got %s", done.Status)
	}
}

func TestHandleMessageUnknownRun(t *testing.T) {
	app := newTestApp(t)
	body := `{"runId":"missing","userId":"user-1","requestId":"req-1","version":1}`

	err := HandleMessage(context.Background(), app, body)
	var procErr ErrProcess
	if !errors.As(err, &procErr) {
		t.Fatalf("expected ErrProcess, got %v", err)
	}
	if procErr.RunID != "missing" {
		t.Fatalf("unexpected run id: %q", procErr.RunID)
	}
}
