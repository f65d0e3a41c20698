package jobs

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

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/stats/domains", h.domainStats)
	rg.GET("/jobs/:id", h.get)
	rg.POST("/jobs", h.create)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	filters := Filters{
		Domain: c.Query("domain"),
	}
	if v := c.Query("remote"); v != "" {
		remote := v == "true"
		filters.Remote = &remote
	}
	if v := c.Query("minMatchScore"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "minMatchScore must be an integer", nil)
			return
		}
		filters.MinScore = &parsed
	}

	list, err := h.Svc.List(c.Request.Context(), userID, filters)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	respond.JSON(c, http.StatusOK, toResponses(list))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	job, err := h.Svc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(job))
}

type createRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	JobType      string   `json:"jobType"`
	Remote       bool     `json:"remote"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Source       string   `json:"source"`
	URL          string   `json:"url"`
	PostedDate   string   `json:"postedDate"`
	Domain       string   `json:"domain"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Create(c.Request.Context(), userID, CreateInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		JobType:      req.JobType,
		Remote:       req.Remote,
		Description:  req.Description,
		Requirements: req.Requirements,
		Source:       req.Source,
		URL:          req.URL,
		PostedDate:   req.PostedDate,
		Domain:       req.Domain,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		case errors.Is(err, ErrDuplicate):
			respond.Error(c, http.StatusConflict, "duplicate", "job already exists", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(job))
}

func (h *Handler) domainStats(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	stats, err := h.Svc.DomainStats(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}

	respond.JSON(c, http.StatusOK, stats)
}
