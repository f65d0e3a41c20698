package ingest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches ingest routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ingest", h.start)
	rg.GET("/ingest/runs", h.listRuns)
	rg.GET("/ingest/runs/:id", h.getRun)
}

type startRequest struct {
	Query    string `json:"query"`
	Location string `json:"location"`
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	run, err := h.Svc.Start(c.Request.Context(), userID, middleware.RequestIDFromContext(c), req.Query, req.Location)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start ingest", nil)
		return
	}

	respond.JSON(c, http.StatusAccepted, toResponse(run))
}

func (h *Handler) listRuns(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "limit must be an integer", nil)
			return
		}
		limit = parsed
	}

	runs, err := h.Svc.ListRuns(c.Request.Context(), userID, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list runs", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(runs))
}

func (h *Handler) getRun(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	run, err := h.Svc.GetRun(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Run not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch run", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(run))
}
