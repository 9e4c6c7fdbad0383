package tour

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/domain"
	"tourcrm/internal/middleware"
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
	tours := rg.Group("/tours")
	tours.GET("", h.List)
	tours.GET("/:id", h.GetByID)
	tours.POST("", middleware.Staff(), h.Create)
	tours.PATCH("/:id", middleware.Staff(), h.Update)
	tours.PATCH("/:id/publish", middleware.Staff(), h.UpdateStatus)
	tours.POST("/:id/gallery", middleware.Staff(), h.UpdateGallery)
	tours.POST("/:id/dates", middleware.Staff(), h.AddDate)
	tours.DELETE("/:id", middleware.Staff(), h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.TourFilter

	f.Q = c.Query("q")
	if v := c.Query("status"); v != "" {
		status := domain.TourStatus(v)
		f.Status = &status
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid categoryId")
			return
		}
		f.CategoryID = &id
	}

	tours, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, tours)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithFields(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Required fields: title, slug, type, duration, difficulty, basePrice, categoryId", fields)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Required fields: title, slug, type, duration, difficulty, basePrice, categoryId")
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status. Must be DRAFT or PUBLISHED")
		return
	}

	t, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status. Must be DRAFT or PUBLISHED")
			return
		}
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) UpdateGallery(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateGalleryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Gallery must be an array of image URLs")
		return
	}

	t, err := h.service.UpdateGallery(c.Request.Context(), id, req.Gallery)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) AddDate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AddDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Date and maxGroupSize are required")
		return
	}

	d, err := h.service.AddDate(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Tour deleted successfully"})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid tour ID")
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTourNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Tour not found")
	case errors.Is(err, repository.ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE_ERROR", "A record with this value already exists")
	case errors.Is(err, repository.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Tour still has related records")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
