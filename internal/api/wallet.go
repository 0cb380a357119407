package api

import (
	"context"                       // Context for Redis operations
	"freelancehub/internal/domain"  // Importing domain models
	"freelancehub/internal/service" // Service layer
	"freelancehub/internal/utils"   // Utility functions
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion
	"time"                          // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// TopUpRequest represents a top-up request
type TopUpRequest struct {
	UserID uint    `json:"user_id" binding:"required"`     // Wallet owner
	Amount float64 `json:"amount" binding:"required,gt=0"` // Top-up amount
	Method string  `json:"method" binding:"required"`      // Payment method
}

// TopUpHandler adds funds to a user's wallet
func TopUpHandler(wallets *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TopUpRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Valid user_id and amount required"))
			return
		}
		if err := wallets.TopUp(req.UserID, req.Amount, req.Method); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,  // Wallet owner
				"amount":  req.Amount,  // Top-up amount
				"error":   err.Error(), // Error message
			}).Error("Top up failed")
			abortWith(c, err, "Failed to add funds")
			return
		}
		// Log successful top-up
		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID, // Wallet owner
			"amount":  req.Amount, // Top-up amount
			"type":    "credit",   // Transaction type
		}).Info("Top up transaction")
		invalidateWalletCache(rdb, req.UserID) // Balance and history changed
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Funds added successfully"}))
	}
}

// WithdrawRequest represents a withdrawal request
type WithdrawRequest struct {
	UserID  uint    `json:"user_id" binding:"required"`     // Wallet owner
	Amount  float64 `json:"amount" binding:"required,gt=0"` // Withdrawal amount
	Method  string  `json:"method" binding:"required"`      // Payout method
	Details string  `json:"details"`                        // Payout destination details
}

// WithdrawHandler requests a withdrawal from a user's wallet
func WithdrawHandler(wallets *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WithdrawRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Valid user_id and amount required"))
			return
		}
		if err := wallets.Withdraw(req.UserID, req.Amount, req.Method, req.Details); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"user_id": req.UserID,  // Wallet owner
				"amount":  req.Amount,  // Withdrawal amount
				"error":   err.Error(), // Error message
			}).Error("Withdrawal failed")
			abortWith(c, err, "Failed to withdraw")
			return
		}
		// Log successful withdrawal request
		logrus.WithFields(logrus.Fields{
			"user_id": req.UserID, // Wallet owner
			"amount":  req.Amount, // Withdrawal amount
			"type":    "debit",    // Transaction type
		}).Info("Withdrawal requested")
		invalidateWalletCache(rdb, req.UserID) // Balance and history changed
		// Return success response; the debit settles later
		c.JSON(http.StatusOK, success(gin.H{"message": "Withdrawal request submitted"}))
	}
}

// WalletTransferRequest represents a transfer between two users
type WalletTransferRequest struct {
	FromUserID uint    `json:"from_user_id" binding:"required"` // Sending user
	ToUserID   uint    `json:"to_user_id" binding:"required"`   // Receiving user
	Amount     float64 `json:"amount" binding:"required,gt=0"`  // Transfer amount
}

// TransferHandler moves funds from one user's wallet to another's
func TransferHandler(wallets *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WalletTransferRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Valid user IDs and amount required"))
			return
		}
		if err := wallets.Transfer(req.FromUserID, req.ToUserID, req.Amount); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"from_user_id": req.FromUserID, // Sending user
				"to_user_id":   req.ToUserID,   // Receiving user
				"amount":       req.Amount,     // Transfer amount
				"error":        err.Error(),    // Error message
			}).Error("Transfer failed")
			abortWith(c, err, "Transfer failed")
			return
		}
		// Log successful transfer
		logrus.WithFields(logrus.Fields{
			"from_user_id": req.FromUserID, // Sending user
			"to_user_id":   req.ToUserID,   // Receiving user
			"amount":       req.Amount,     // Transfer amount
			"type":         "transfer",     // Transaction type
		}).Info("Transfer transaction")
		// Invalidate wallet and history cache for both users
		invalidateWalletCache(rdb, req.FromUserID)
		invalidateWalletCache(rdb, req.ToUserID)
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Transfer completed successfully"}))
	}
}

// GetWalletHandler returns a user's wallet, creating it on first access
func GetWalletHandler(wallets *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		ctx := context.Background()                               // Context for Redis operations
		cacheKey := "wallet:user:" + strconv.Itoa(int(userID))    // Cache key for wallet
		var cached domain.Wallet                                  // Wallet struct for cached data
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, success(gin.H{"wallet": cached, "cached": true}))
			return
		}
		// Not cached; read (or lazily create) from the database
		wallet, err := wallets.GetWallet(uint(userID))
		if err != nil {
			abortWith(c, err, "Failed to fetch wallet")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, wallet, 60*time.Second) // Cache the wallet for 60 seconds
		c.JSON(http.StatusOK, success(gin.H{"wallet": wallet, "cached": false}))
	}
}

// WalletTransactionsHandler returns the newest ledger entries for a user
func WalletTransactionsHandler(wallets *service.WalletService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		ctx := context.Background()                               // Context for Redis operations
		cacheKey := "txhistory:user:" + strconv.Itoa(int(userID)) // Cache key for history
		var cached []domain.WalletTransaction                     // Cached transactions
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached) // Try to get from cache
		// If found in cache, return it
		if err == nil && found {
			c.JSON(http.StatusOK, success(gin.H{"transactions": cached, "cached": true}))
			return
		}
		txs, err := wallets.Transactions(uint(userID), 50)
		if err != nil {
			abortWith(c, err, "Failed to fetch transactions")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, txs, 60*time.Second) // Cache history for 60 seconds
		c.JSON(http.StatusOK, success(gin.H{"transactions": txs, "cached": false}))
	}
}

// invalidateWalletCache drops a user's wallet and history cache entries
func invalidateWalletCache(rdb *redis.Client, userID uint) {
	ctx := context.Background()                                               // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb, "wallet:user:"+strconv.Itoa(int(userID))) // Invalidate wallet cache
	_ = utils.DeleteCache(ctx, rdb, "txhistory:user:"+strconv.Itoa(int(userID)))
}
