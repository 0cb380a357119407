package api

import (
	"context"                      // Context for Redis operations
	"freelancehub/internal/domain" // Importing domain models
	"freelancehub/internal/utils"  // Utility functions
	"net/http"                     // HTTP status codes
	"strconv"                      // String conversion
	"time"                         // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// UserAdminView is a user row with wallet balance for the admin listing
type UserAdminView struct {
	UserID  uint    `json:"user_id"` // User id
	Name    string  `json:"name"`    // Display name
	Email   string  `json:"email"`   // Login email
	Role    string  `json:"role"`    // Account role
	Balance float64 `json:"balance"` // Wallet balance, zero when no wallet yet
}

// pageParams reads page/page_size query params with defaults and limits
func pageParams(c *gin.Context) (page, pageSize int) {
	page = 1      // Default page
	pageSize = 20 // Default page size
	// If page exists in query
	if p := c.Query("page"); p != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// If page_size exists in query
	if ps := c.Query("page_size"); ps != "" {
		// Convert page_size to integer
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size if valid
		}
	}
	return page, pageSize
}

// ListUsersHandler returns all users with wallet balances, paginated and cached
func ListUsersHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination parameters
		ctx := context.Background()     // Context for Redis operations
		// Create a cache key based on pagination parameters
		cacheKey := "admin:users:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		var cached struct {
			Users      []UserAdminView `json:"users"`       // List of users
			Total      int64           `json:"total"`       // Total number of users
			TotalPages int             `json:"total_pages"` // Total pages
		}
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, success(gin.H{
				"users":       cached.Users,      // List of users
				"page":        page,              // Current page
				"page_size":   pageSize,          // Page size
				"total":       cached.Total,      // Total number of users
				"total_pages": cached.TotalPages, // Total pages
				"cached":      true,              // Indicate response is from cache
			}))
			return
		}
		var total int64 // Total user count
		if err := db.Model(&domain.User{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to count users"))
			return
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var users []UserAdminView       // Paginated users with wallet info
		// LEFT JOIN so users without a wallet still list with zero balance
		if err := db.Model(&domain.User{}).
			Select("users.id as user_id, users.name, users.email, users.role, COALESCE(wallets.balance, 0) as balance").
			Joins("LEFT JOIN wallets ON wallets.user_id = users.id").
			Order("users.id").
			Offset(offset).
			Limit(pageSize).
			Scan(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to fetch users"))
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		cached.Users = users
		cached.Total = total
		cached.TotalPages = totalPages
		_ = utils.SetCache(ctx, rdb, cacheKey, cached, 60*time.Second) // Cache the page for 60 seconds
		// Return the users
		c.JSON(http.StatusOK, success(gin.H{
			"users":       users,      // List of users
			"page":        page,       // Current page
			"page_size":   pageSize,   // Page size
			"total":       total,      // Total number of users
			"total_pages": totalPages, // Total pages
			"cached":      false,      // Not from cache
		}))
	}
}

// ListTransactionsHandler returns the full ledger, paginated and cached
func ListTransactionsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, pageSize := pageParams(c) // Pagination parameters
		ctx := context.Background()     // Context for Redis operations
		// Create a cache key based on pagination parameters
		cacheKey := "admin:transactions:page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		var cached struct {
			Transactions []domain.WalletTransaction `json:"transactions"` // Ledger rows
			Total        int64                      `json:"total"`        // Total row count
			TotalPages   int                        `json:"total_pages"`  // Total pages
		}
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, success(gin.H{
				"transactions": cached.Transactions, // Ledger rows
				"page":         page,                // Current page
				"page_size":    pageSize,            // Page size
				"total":        cached.Total,        // Total row count
				"total_pages":  cached.TotalPages,   // Total pages
				"cached":       true,                // Indicate response is from cache
			}))
			return
		}
		var total int64 // Total transaction count
		if err := db.Model(&domain.WalletTransaction{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to count transactions"))
			return
		}
		offset := (page - 1) * pageSize             // Calculate offset for pagination
		var transactions []domain.WalletTransaction // Paginated ledger rows
		if err := db.Order("created_at desc").
			Offset(offset).
			Limit(pageSize).
			Find(&transactions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to fetch transactions"))
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		cached.Transactions = transactions
		cached.Total = total
		cached.TotalPages = totalPages
		_ = utils.SetCache(ctx, rdb, cacheKey, cached, 60*time.Second) // Cache the page for 60 seconds
		// Return the transactions
		c.JSON(http.StatusOK, success(gin.H{
			"transactions": transactions, // Ledger rows
			"page":         page,         // Current page
			"page_size":    pageSize,     // Page size
			"total":        total,        // Total row count
			"total_pages":  totalPages,   // Total pages
			"cached":       false,        // Not from cache
		}))
	}
}
