package api

import (
	"errors"
	"net/http"
	"time"

	"sportsbook_api/internal/middleware"
	"sportsbook_api/internal/store"
	"sportsbook_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const walletCacheTTL = 60 * time.Second

// GetWalletHandler returns the authenticated user's balance, cached in
// Redis until the next credit invalidates it.
func GetWalletHandler(users store.UserStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		cacheKey := utils.WalletCacheKey(userID)
		var balance float64
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &balance); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"wallet": balance})
			return
		}
		user, err := users.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, user.Wallet, walletCacheTTL)
		c.JSON(http.StatusOK, gin.H{"wallet": user.Wallet})
	}
}
