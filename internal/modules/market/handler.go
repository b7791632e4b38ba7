package market

import (
	"errors"
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

// RegisterRoutes mounts the public catalog endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
}

// RegisterFarmerRoutes mounts order placement and history (farmer role).
func (h *Handler) RegisterFarmerRoutes(rg *gin.RouterGroup) {
	rg.POST("/orders", h.CreateOrder)
	rg.GET("/my/orders", h.MyOrders)
}

func (h *Handler) ListProducts(c *gin.Context) {
	list, err := h.service.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown product category")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load products")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"products": list})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.BuyerID = c.GetInt64("user_id")

	o, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be positive")
		case errors.Is(err, ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		case errors.Is(err, ErrOutOfStock):
			response.Error(c, http.StatusConflict, "OUT_OF_STOCK", "Not enough stock for this order")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place order")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": o})
}

func (h *Handler) MyOrders(c *gin.Context) {
	list, err := h.service.GetMyOrders(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": list})
}
