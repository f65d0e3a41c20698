package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/applications"
	"jobtrack-backend/internal/ingest"
	"jobtrack-backend/internal/jobs"
	"jobtrack-backend/internal/profiles"
	"jobtrack-backend/internal/settings"
	"jobtrack-backend/internal/shared/config"
	"jobtrack-backend/internal/shared/metrics"
	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	ProfileHandler     *profiles.Handler
	JobHandler         *jobs.Handler
	ApplicationHandler *applications.Handler
	SettingsHandler    *settings.Handler
	IngestHandler      *ingest.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	// Everything past this point needs a caller identity.
	api.Use(
		middleware.Identity(),
		middleware.RateLimit(rateLimitConfig()),
	)

	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(api)
	}
	if deps.JobHandler != nil {
		deps.JobHandler.RegisterRoutes(api)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(api)
	}
	if deps.SettingsHandler != nil {
		deps.SettingsHandler.RegisterRoutes(api)
	}
	if deps.IngestHandler != nil {
		deps.IngestHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig throttles ingest kicks aggressively and leaves browse
// endpoints on a looser polling budget.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		DefaultGroup: "DEFAULT",
		GroupFor: func(c *gin.Context) string {
			switch {
			case c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/ingest":
				return "INGEST"
			case c.Request.Method == http.MethodGet:
				return "POLLING"
			default:
				return "DEFAULT"
			}
		},
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 2, Burst: 10},
			"POLLING": {Rate: 10, Burst: 30},
			"INGEST":  {Rate: 0.1, Burst: 3},
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
