package itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"tripdesk/internal/domain"
	"tripdesk/internal/middleware"
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
	it := protected.Group("/itinerary")
	{
		it.GET("/draft", h.GetDraft)
		it.PATCH("/draft", h.UpdateScalars)

		it.POST("/draft/days", h.AddDay)
		it.PUT("/draft/days/:index", h.UpdateDay)
		it.DELETE("/draft/days/:index", h.RemoveDay)

		it.POST("/draft/hotels", h.AddHotel)
		it.PUT("/draft/hotels/:index", h.UpdateHotel)
		it.DELETE("/draft/hotels/:index", h.RemoveHotel)

		it.POST("/draft/transportation", h.AddTransport)
		it.PUT("/draft/transportation/:index", h.UpdateTransport)
		it.DELETE("/draft/transportation/:index", h.RemoveTransport)

		it.POST("/draft/activities", h.AddActivity)
		it.PUT("/draft/activities/:index", h.UpdateActivity)
		it.DELETE("/draft/activities/:index", h.RemoveActivity)

		it.PUT("/draft/inclusions", h.SetInclusions)
		it.PUT("/draft/exclusions", h.SetExclusions)

		it.POST("/submit", h.Submit)
	}
}

func (h *Handler) GetDraft(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.Draft(sess)})
}

func (h *Handler) UpdateScalars(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req UpdateScalarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.UpdateScalars(sess, req)})
}

func (h *Handler) AddDay(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var day domain.Day
	if err := c.ShouldBindJSON(&day); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.AddDay(sess, day)})
}

func (h *Handler) UpdateDay(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	var day domain.Day
	if err := c.ShouldBindJSON(&day); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateDay(sess, index, day)
	h.draftOrError(c, draft, err)
}

func (h *Handler) RemoveDay(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	draft, err := h.service.RemoveDay(sess, index)
	h.draftOrError(c, draft, err)
}

func (h *Handler) AddHotel(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var night domain.HotelNight
	if err := c.ShouldBindJSON(&night); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.AddHotel(sess, night)})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	var night domain.HotelNight
	if err := c.ShouldBindJSON(&night); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateHotel(sess, index, night)
	h.draftOrError(c, draft, err)
}

func (h *Handler) RemoveHotel(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	draft, err := h.service.RemoveHotel(sess, index)
	h.draftOrError(c, draft, err)
}

func (h *Handler) AddTransport(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var entry domain.TransportEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.AddTransport(sess, entry)})
}

func (h *Handler) UpdateTransport(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	var entry domain.TransportEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateTransport(sess, index, entry)
	h.draftOrError(c, draft, err)
}

func (h *Handler) RemoveTransport(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	draft, err := h.service.RemoveTransport(sess, index)
	h.draftOrError(c, draft, err)
}

func (h *Handler) AddActivity(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var row domain.ActivityRow
	if err := c.ShouldBindJSON(&row); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.AddActivity(sess, row)})
}

func (h *Handler) UpdateActivity(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	var row domain.ActivityRow
	if err := c.ShouldBindJSON(&row); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	draft, err := h.service.UpdateActivity(sess, index, row)
	h.draftOrError(c, draft, err)
}

func (h *Handler) RemoveActivity(c *gin.Context) {
	sess, index, ok := h.sessionAndIndex(c)
	if !ok {
		return
	}

	draft, err := h.service.RemoveActivity(sess, index)
	h.draftOrError(c, draft, err)
}

func (h *Handler) SetInclusions(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req InclusionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.SetInclusions(sess, req)})
}

func (h *Handler) SetExclusions(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req InclusionSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"draft": h.service.SetExclusions(sess, req)})
}

func (h *Handler) Submit(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	sub, err := h.service.Submit(c.Request.Context(), sess)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			response.Error(c, http.StatusBadRequest, "DRAFT_INVALID", verr.Message)
			return
		}
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit itinerary")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"submission": sub})
}

func (h *Handler) sessionAndIndex(c *gin.Context) (sess domain.Session, index int, ok bool) {
	sess, ok = middleware.SessionFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return sess, 0, false
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INDEX", "Index must be an integer")
		return sess, 0, false
	}
	return sess, index, true
}

func (h *Handler) draftOrError(c *gin.Context, draft *domain.ItineraryDraft, err error) {
	if err != nil {
		if errors.Is(err, ErrIndexOutOfRange) {
			response.Error(c, http.StatusBadRequest, "INVALID_INDEX", "Index out of range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "EDIT_FAILED", "Failed to edit draft")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"draft": draft})
}
