package api

import (
	"errors"
	"net/http"

	"sportsbook_api/internal/domain"
	"sportsbook_api/internal/middleware"
	"sportsbook_api/internal/store"
	"sportsbook_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SubmitDepositRequest is the body of a deposit submission. UTR is the
// free-text proof-of-payment reference the user got from their bank.
type SubmitDepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"` // Deposit amount, must be positive
	UTR    string  `json:"utr" binding:"required"`         // Proof-of-payment reference
}

// ApproveDepositRequest names the pending request to approve.
type ApproveDepositRequest struct {
	RequestID uint `json:"requestId" binding:"required"`
}

// SubmitDepositHandler records a pending deposit request for the
// authenticated user. The wallet is untouched until an admin approves.
func SubmitDepositHandler(deposits store.DepositStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req SubmitDepositRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount or missing UTR"})
			return
		}
		deposit := domain.DepositRequest{
			UserID: userID,
			Amount: req.Amount,
			UTR:    req.UTR,
		}
		if err := deposits.CreateDeposit(c.Request.Context(), &deposit); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"amount":  req.Amount,
				"error":   err.Error(),
			}).Error("Deposit submission failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit deposit request"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    userID,
			"request_id": deposit.ID,
			"amount":     deposit.Amount,
		}).Info("Deposit request submitted")
		c.JSON(http.StatusCreated, gin.H{
			"message":    "Deposit request submitted successfully",
			"request_id": deposit.ID,
		})
	}
}

// ApproveDepositHandler approves a pending request: one store call
// credits the wallet and flips the status atomically. A request that
// is unknown maps to 404; one already approved maps to 409 and leaves
// the wallet as it was. Must run behind the admin guard.
func ApproveDepositHandler(deposits store.DepositStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req ApproveDepositRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		approved, err := deposits.ApproveDeposit(c.Request.Context(), req.RequestID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrDepositNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Deposit request not found"})
			case errors.Is(err, store.ErrDepositNotPending):
				c.JSON(http.StatusConflict, gin.H{"error": "Deposit request already approved"})
			default:
				logrus.WithFields(logrus.Fields{
					"admin_id":   adminID,
					"request_id": req.RequestID,
					"error":      err.Error(),
				}).Error("Deposit approval failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve deposit"})
			}
			return
		}
		logrus.WithFields(logrus.Fields{
			"admin_id":   adminID,
			"request_id": approved.ID,
			"user_id":    approved.UserID,
			"amount":     approved.Amount,
		}).Info("Deposit approved")
		// Drop the cached balance so the next wallet read sees the credit.
		_ = utils.DeleteCache(c.Request.Context(), rdb, utils.WalletCacheKey(approved.UserID))
		c.JSON(http.StatusOK, gin.H{"message": "Deposit approved and wallet updated successfully"})
	}
}

// ListPendingDepositsHandler returns the approval queue, oldest first.
// Must run behind the admin guard.
func ListPendingDepositsHandler(deposits store.DepositStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqs, err := deposits.ListPendingDeposits(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending deposits"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": reqs})
	}
}
