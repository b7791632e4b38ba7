package labor

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

// RegisterRoutes mounts the public directory endpoint.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/laborers", h.ListAvailable)
}

// RegisterLaborerRoutes mounts the profile management endpoints (laborer role).
func (h *Handler) RegisterLaborerRoutes(rg *gin.RouterGroup) {
	rg.GET("/my/labor-profile", h.MyProfile)
	rg.PUT("/my/labor-profile", h.UpdateProfile)
	rg.POST("/my/labor-profile/skills", h.AddSkill)
	rg.DELETE("/my/labor-profile/skills/:skill", h.RemoveSkill)
	rg.PATCH("/my/labor-profile/availability", h.SetAvailability)
}

func (h *Handler) ListAvailable(c *gin.Context) {
	list, err := h.service.ListAvailable(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load laborers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"laborers": list})
}

func (h *Handler) MyProfile(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.UserID = c.GetInt64("user_id")

	p, err := h.service.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		h.profileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) AddSkill(c *gin.Context) {
	var req AddSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.AddSkill(c.Request.Context(), c.GetInt64("user_id"), req.Skill)
	if err != nil {
		if errors.Is(err, ErrSkillExists) {
			response.Error(c, http.StatusConflict, "SKILL_EXISTS", "Skill is already listed")
			return
		}
		h.profileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) RemoveSkill(c *gin.Context) {
	p, err := h.service.RemoveSkill(c.Request.Context(), c.GetInt64("user_id"), c.Param("skill"))
	if err != nil {
		if errors.Is(err, ErrSkillNotFound) {
			response.Error(c, http.StatusNotFound, "SKILL_NOT_FOUND", "Skill is not listed")
			return
		}
		h.profileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": p})
}

func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetAvailability(c.Request.Context(), c.GetInt64("user_id"), req.IsAvailable); err != nil {
		h.profileError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_available": req.IsAvailable})
}

func (h *Handler) profileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Labor profile not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile fields")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update labor profile")
	}
}
