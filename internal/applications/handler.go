package applications

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/applications", h.list)
	rg.POST("/applications", h.create)
	rg.PATCH("/applications/:id/status", h.updateStatus)
	rg.GET("/applications/suggestions", h.suggestions)
	rg.POST("/applications/cover-letter", h.coverLetter)
	rg.POST("/applications/auto-apply", h.autoApply)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.ListWithJobs(c.Request.Context(), userID, Status(c.Query("status")))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toDetailResponses(list))
}

type createRequest struct {
	JobID string `json:"jobId"`
	Notes string `json:"notes"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.Create(c.Request.Context(), userID, req.JobID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "jobId is required", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusConflict, "duplicate", "already applied to this job", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create application", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(app))
}

type statusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	app, err := h.Svc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown status", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Application not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update application", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(app))
}

func (h *Handler) suggestions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	list, err := h.Svc.Suggestions(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			respond.Error(c, http.StatusBadRequest, "no_profile", "No CV uploaded yet", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute suggestions", nil)
		}
		return
	}

	out := make([]SuggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSuggestionResponse(s))
	}
	respond.JSON(c, http.StatusOK, out)
}

type coverLetterRequest struct {
	JobID string `json:"jobId"`
}

func (h *Handler) coverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	letter, err := h.Svc.CoverLetter(c.Request.Context(), userID, req.JobID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoProfile):
			respond.Error(c, http.StatusBadRequest, "no_profile", "No CV uploaded", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate cover letter", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"coverLetter": letter})
}

func (h *Handler) autoApply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	created, err := h.Svc.AutoApply(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to auto apply", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"created": created})
}
