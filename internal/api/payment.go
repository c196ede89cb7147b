package api

import (
	"net/http"

	"sportsbook_api/internal/config"

	"github.com/gin-gonic/gin"
)

// ManualDetailsHandler serves the static bank-transfer instructions a
// depositor needs before submitting a UTR.
func ManualDetailsHandler(details config.BankDetails) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, details)
	}
}
