package form

import (
	"errors"
	"net/http"

	"tripdesk/internal/domain"
	"tripdesk/internal/middleware"
	"tripdesk/internal/modules/schema"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	formGroup := protected.Group("/form")
	{
		formGroup.POST("/submit", h.Submit)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var booking domain.BookingForm
	if err := c.ShouldBindJSON(&booking); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), sess, &booking)
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			if verr.Field != "" {
				response.ErrorWithDetails(c, http.StatusBadRequest, "FIELD_INVALID", verr.Message, gin.H{"field": verr.Field})
				return
			}
			response.Error(c, http.StatusBadRequest, "DRAFT_INVALID", verr.Message)
		case errors.Is(err, schema.ErrSchemaUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "SCHEMA_UNAVAILABLE", "Form schema is not available")
		default:
			response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}
