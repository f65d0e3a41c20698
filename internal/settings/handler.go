package settings

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

// RegisterRoutes attaches settings routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.get)
	rg.PUT("/settings", h.update)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	current, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch settings", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(current))
}

type updateRequest struct {
	TargetDomains    *[]string `json:"targetDomains"`
	MinMatchScore    *int      `json:"minMatchScore"`
	AutoApplyEnabled *bool     `json:"autoApplyEnabled"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	updated, err := h.Svc.Update(c.Request.Context(), userID, UpdateRequest{
		TargetDomains:    req.TargetDomains,
		MinMatchScore:    req.MinMatchScore,
		AutoApplyEnabled: req.AutoApplyEnabled,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "minMatchScore must be between 0 and 100", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update settings", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(updated))
}
