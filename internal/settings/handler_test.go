package settings_test

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

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	router := newTestRouter(t)

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	addGuestHeader(reqGet)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var defaults struct {
		TargetDomains    []string `json:"targetDomains"`
		MinMatchScore    int      `json:"minMatchScore"`
		AutoApplyEnabled bool     `json:"autoApplyEnabled"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&defaults); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if defaults.MinMatchScore != 30 || defaults.AutoApplyEnabled || len(defaults.TargetDomains) != 0 {
		t.Fatalf("unexpected defaults: %+v", defaults)
	}

	body := `{"targetDomains":["Backend","DevOps"],"minMatchScore":60}`
	reqPut := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	reqPut.Header.Set("Content-Type", "application/json")
	addGuestHeader(reqPut)
	respPut := httptest.NewRecorder()
	router.ServeHTTP(respPut, reqPut)

	if respPut.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", respPut.Code, respPut.Body.String())
	}
	var updated struct {
		TargetDomains []string `json:"targetDomains"`
		MinMatchScore int      `json:"minMatchScore"`
	}
	if err := json.NewDecoder(respPut.Body).Decode(&updated); err != nil {
		t.Fatalf("decode update: %v", err)
	}
	if updated.MinMatchScore != 60 {
		t.Fatalf("expected score 60, got %d", updated.MinMatchScore)
	}
	if len(updated.TargetDomains) != 2 || updated.TargetDomains[0] != "backend" {
		t.Fatalf("expected normalized domains, got %v", updated.TargetDomains)
	}
}

func TestSettingsRejectOutOfRangeScore(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(`{"minMatchScore":150}`))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}
