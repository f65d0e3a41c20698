package jobs_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/bootstrap"
	"jobtrack-backend/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		ObjectStoreType: "local",
		LocalStoreDir:   t.TempDir(),
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app.Router
}

func postJob(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestJobsCreateListAndGet(t *testing.T) {
	router := newTestRouter(t)

	resp := postJob(t, router, `{"title":"Backend Engineer","company":"Acme","remote":true,"requirements":["Go","PostgreSQL"]}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		JobID  string `json:"jobId"`
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.JobID == "" || created.Domain != "backend" {
		t.Fatalf("unexpected job: %+v", created)
	}

	// Duplicate by title and company.
	dup := postJob(t, router, `{"title":"backend engineer","company":"ACME"}`)
	if dup.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", dup.Code)
	}

	reqList := httptest.NewRequest(http.MethodGet, "/api/v1/jobs?domain=backend&remote=true", nil)
	addGuestHeader(reqList)
	respList := httptest.NewRecorder()
	router.ServeHTTP(respList, reqList)

	if respList.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respList.Code)
	}
	var list []struct {
		JobID string `json:"jobId"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 1 || list[0].JobID != created.JobID {
		t.Fatalf("unexpected list: %v", list)
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+created.JobID, nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
}

func TestJobsGetMissing(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/missing", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestJobsDomainStats(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"title":"Backend Engineer","company":"Acme"}`,
		`{"title":"API Developer","company":"Globex"}`,
		`{"title":"React Developer","company":"Initech"}`,
	} {
		if resp := postJob(t, router, body); resp.Code != http.StatusCreated {
			t.Fatalf("seed job failed with %d: %s", resp.Code, resp.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/stats/domains", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var stats map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats response: %v", err)
	}
	if stats["backend"] != 2 || stats["frontend"] != 1 {
		t.Fatalf("unexpected stats: %v", stats)
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}
