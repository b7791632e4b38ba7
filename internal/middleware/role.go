package middleware

import (
	"net/http"

	"agrimarket/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// FarmerOnly middleware requires farmer role
func FarmerOnly() gin.HandlerFunc {
	return RequireRole("farmer")
}

// SellerOnly middleware requires seller role
func SellerOnly() gin.HandlerFunc {
	return RequireRole("seller")
}

// LaborerOnly middleware requires laborer role
func LaborerOnly() gin.HandlerFunc {
	return RequireRole("laborer")
}
