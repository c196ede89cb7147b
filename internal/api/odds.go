package api

import (
	"net/http"

	"sportsbook_api/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetOddsHandler serves the static odds listing. The slice is owned by
// the caller and never mutated, so every response is identical.
func GetOddsHandler(odds []domain.MatchOdds) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, odds)
	}
}
