package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourcrm/internal/domain"
	"tourcrm/internal/pkg/response"
)

// RequireRole ensures the authenticated user holds one of the allowed roles.
func RequireRole(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}

		for _, r := range allowed {
			if domain.Role(role.(string)) == r {
				c.Next()
				return
			}
		}

		response.AbortError(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource")
	}
}

// AdminOnly restricts a route to ADMIN users.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// Staff allows both ADMIN and MANAGER users.
func Staff() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin, domain.RoleManager)
}
