package submission

import (
	"errors"
	"net/http"
	"path/filepath"

	"tripdesk/internal/domain"
	"tripdesk/internal/middleware"
	"tripdesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	docsDir string
}

func NewHandler(service *Service, docsDir string) *Handler {
	return &Handler{service: service, docsDir: docsDir}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/my-submissions", h.ListMine)
	subGroup := protected.Group("/submissions")
	{
		subGroup.GET("/:id", h.Get)
		subGroup.GET("/:id/download", h.Download)
	}
}

func (h *Handler) ListMine(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	subs, err := h.service.ListMine(c.Request.Context(), sess)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list submissions")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submissions": subs})
}

func (h *Handler) Get(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sub, err := h.service.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your submission")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch submission")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"submission": sub})
}

// Download streams the generated brochure. Approved-without-URL means the
// renderer has not finished; clients retry.
func (h *Handler) Download(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sub, err := h.service.Get(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Submission not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your submission")
		default:
			response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch submission")
		}
		return
	}

	if sub.Status != domain.SubmissionApproved || sub.DocumentURL == "" {
		response.Error(c, http.StatusConflict, "DOCUMENT_NOT_READY", "Document has not been generated yet")
		return
	}

	c.FileAttachment(filepath.Join(h.docsDir, sub.ID+".pdf"), "itinerary-"+sub.ID+".pdf")
}
