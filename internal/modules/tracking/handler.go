package tracking

import (
	"net/http"

	"agrimarket/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterFarmerRoutes mounts the tracking view (farmer role).
func (h *Handler) RegisterFarmerRoutes(rg *gin.RouterGroup) {
	rg.GET("/tracking", h.Overview)
}

func (h *Handler) Overview(c *gin.Context) {
	ov, err := h.service.GetOverview(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load tracking overview")
		return
	}
	response.Success(c, http.StatusOK, ov)
}
