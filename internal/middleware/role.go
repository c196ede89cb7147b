package middleware

import (
	"net/http"

	"sportsbook_api/internal/domain"
	"sportsbook_api/internal/store"

	"github.com/gin-gonic/gin"
)

// RequireRole loads the authenticated user and allows the request only
// if the stored role matches. The decision is made once here; handlers
// behind this guard never re-check roles.
func RequireRole(users store.UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil || user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin is RequireRole for the admin role.
func RequireAdmin(users store.UserStore) gin.HandlerFunc {
	return RequireRole(users, domain.RoleAdmin)
}
