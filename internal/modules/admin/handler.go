package admin

import (
	"errors"
	"net/http"

	"tripdesk/internal/modules/submission"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by the admin role
// middleware.
func (h *Handler) RegisterRoutes(adminGroup *gin.RouterGroup) {
	subGroup := adminGroup.Group("/submissions")
	{
		subGroup.GET("", h.List)
		subGroup.POST("/:id/approve", h.Approve)
		subGroup.POST("/:id/reject", h.Reject)
	}
}

func (h *Handler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrBadFilter) {
			response.Error(c, http.StatusBadRequest, "BAD_FILTER", "status must be one of all, pending, approved, rejected")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list submissions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}

func (h *Handler) Approve(c *gin.Context) {
	sub, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.decisionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A rejection message is required")
		return
	}

	sub, err := h.service.Reject(c.Request.Context(), c.Param("id"), req.Message)
	if err != nil {
		h.decisionError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

func (h *Handler) decisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, submission.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
	case errors.Is(err, submission.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Submission has already been decided")
	case errors.Is(err, submission.ErrEmptyMessage):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A rejection message is required")
	default:
		response.Error(c, http.StatusInternalServerError, "DECISION_FAILED", "Failed to record decision")
	}
}
