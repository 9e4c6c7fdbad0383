package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/domain"
	"tourcrm/internal/pkg/response"
	"tourcrm/internal/pkg/validator"
	"tourcrm/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	bookings.GET("", h.List)
	bookings.GET("/:id", h.GetByID)
	bookings.POST("", h.Create)
	bookings.PATCH("/:id/status", h.UpdateStatus)
	bookings.PATCH("/:id", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.BookingFilter

	if v := c.Query("status"); v != "" {
		status := domain.BookingStatus(v)
		f.Status = &status
	}
	if v := c.Query("tourId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tourId")
			return
		}
		f.TourID = &id
	}
	if v := c.Query("from"); v != "" {
		t, ok := parseDate(v)
		if !ok {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid from date")
			return
		}
		f.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, ok := parseDate(v)
		if !ok {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid to date")
			return
		}
		f.To = &t
	}
	f.Q = c.Query("q")

	bookings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithFields(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Required fields: tourDateId, customer (fullName, phone), people", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Required fields: tourDateId, customer (fullName, phone), people")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status. Must be NEW, PAID, or CANCELLED")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status. Must be NEW, PAID, or CANCELLED")
			return
		}
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func parseDate(v string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrTourDateNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour date not found")
	case errors.Is(err, repository.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Related record does not exist")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
