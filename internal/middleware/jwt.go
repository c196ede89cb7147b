package middleware

import (
	"net/http"
	"strings"

	"sportsbook_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the verified user
// id is stored for downstream handlers.
const ContextUserID = "userID"

// JWTAuthMiddleware validates the bearer token and stores the embedded
// user id in the request context.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}

// UserID extracts the verified user id set by JWTAuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
