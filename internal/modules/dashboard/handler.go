package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
}

func (h *Handler) Stats(c *gin.Context) {
	rng := c.DefaultQuery("range", "7d")
	switch rng {
	case "1d", "7d", "30d":
	default:
		rng = "7d"
	}

	stats, err := h.service.Stats(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
