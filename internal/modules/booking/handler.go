package booking

import (
	"errors"
	"net/http"
	"strconv"

	"agrimarket/internal/domain"
	"agrimarket/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterFarmerRoutes mounts the request-side endpoints (farmer role).
func (h *Handler) RegisterFarmerRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/my/bookings", h.MyBookings)
}

// RegisterSellerRoutes mounts the moderation endpoints (seller role).
func (h *Handler) RegisterSellerRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListForSeller)
	rg.PATCH("/bookings/:id/approve", h.Approve)
	rg.PATCH("/bookings/:id/reject", h.Reject)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.FarmerID = c.GetInt64("user_id")

	b, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Start and end dates are required and end must be after start")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
		case errors.Is(err, ErrEquipmentUnavailable):
			response.Error(c, http.StatusConflict, "EQUIPMENT_UNAVAILABLE", "Equipment is not available for booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) MyBookings(c *gin.Context) {
	farmerID := c.GetInt64("user_id")

	list, err := h.service.GetMyBookings(c.Request.Context(), farmerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": list})
}

func (h *Handler) ListForSeller(c *gin.Context) {
	sellerID := c.GetInt64("user_id")
	status := c.Query("status")

	list, err := h.service.ListForSeller(c.Request.Context(), sellerID, status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	pending, err := h.service.CountPendingForSeller(c.Request.Context(), sellerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookings":      list,
		"pending_count": pending,
	})
}

func (h *Handler) Approve(c *gin.Context) {
	h.moderate(c, domain.BookingApproved)
}

func (h *Handler) Reject(c *gin.Context) {
	h.moderate(c, domain.BookingRejected)
}

// moderate applies the transition and responds with the refreshed moderation
// list, so the client renders from the source of truth instead of patching
// locally.
func (h *Handler) moderate(c *gin.Context, newStatus domain.BookingStatus) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	sellerID := c.GetInt64("user_id")
	role := c.GetString("role")

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), bookingID, sellerID, role, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the equipment owner can moderate this booking")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking is not pending")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}

	list, err := h.service.ListForSeller(c.Request.Context(), sellerID, "")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reload bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"booking":  b,
		"bookings": list,
	})
}
