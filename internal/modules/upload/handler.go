package upload

import (
	"errors"
	"net/http"

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
	protected.POST("/image-upload", h.Upload)
}

type uploadRequest struct {
	Image string `json:"image" binding:"required"`
}

func (h *Handler) Upload(c *gin.Context) {
	var req uploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	url, err := h.service.Store(req.Image)
	if err != nil {
		switch {
		case errors.Is(err, ErrTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Image exceeds the 10MB limit")
		case errors.Is(err, ErrNotAnImage), errors.Is(err, ErrBadPayload):
			response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", "Payload is not a valid image")
		default:
			response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store image")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": url})
}
