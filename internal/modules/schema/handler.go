package schema

import (
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

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/schema", h.GetSchema)
}

// GetSchema returns the form schema document. Without it clients cannot
// open the authoring flow, so load failure is 503, not 500.
func (h *Handler) GetSchema(c *gin.Context) {
	doc, err := h.service.Load()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "SCHEMA_UNAVAILABLE", "Form schema is not available")
		return
	}

	response.Success(c, http.StatusOK, doc)
}
