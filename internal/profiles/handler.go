package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrack-backend/internal/shared/server/middleware"
	"jobtrack-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cv", h.current)
	rg.POST("/cv/parse", h.parseText)
	rg.POST("/cv/upload", h.upload)
	rg.PUT("/cv", h.update)
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	profile, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "No CV uploaded", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(profile))
}

type parseTextRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parseText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req parseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.ParseText(c.Request.Context(), userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse CV", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(profile))
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	profile, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "no text could be extracted from file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload CV", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(profile))
}

type updateRequest struct {
	Name    *string   `json:"name"`
	Email   *string   `json:"email"`
	Phone   *string   `json:"phone"`
	Summary *string   `json:"summary"`
	Skills  *[]string `json:"skills"`
}

func (h *Handler) update(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Update(c.Request.Context(), userID, UpdateInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Summary: req.Summary,
		Skills:  req.Skills,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update profile", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(profile))
}
