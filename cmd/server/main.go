package main

import (
	"context"                          // context package is needed for Redis operations
	"freelancehub/internal/api"        // Custom package for API handlers
	"freelancehub/internal/config"     // Custom package for configuration
	"freelancehub/internal/middleware" // Custom package for middleware
	"freelancehub/internal/service"    // Custom package for domain services
	"log"                              // log package is needed for logging

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library

	"freelancehub/internal/domain" // Importing domain models
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database; TranslateError turns driver duplicate-key
	// errors into gorm.ErrDuplicatedKey for the services to classify
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Domain services
	hiring := service.NewHiringService(db, cfg.StrictProposals) // Proposal lifecycle and job assignment
	wallets := service.NewWalletService(db)                     // Wallet ledger
	jobs := service.NewJobService(db)                           // Job catalog
	messages := service.NewMessageService(db)                   // Direct messages

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/register", api.RegisterHandler(db))                // Registration endpoint
	auth.POST("/login", api.LoginHandler(db, cfg.JWTSecret))       // Login endpoint
	auth.GET("/profile/:user_id", api.ProfileHandler(db, wallets)) // Public profile endpoint
	auth.GET("/skills", api.ListSkillsHandler(db))                 // Skills taxonomy endpoint
	auth.GET("/notifications/:user_id", api.NotificationsHandler(db))
	auth.PUT("/notifications/read/:notification_id", api.MarkNotificationReadHandler(db))
	// Profile mutation requires a valid token
	authed := auth.Group("")
	authed.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authed.PUT("/profile/update", api.UpdateProfileHandler(db)) // Profile update endpoint
	authed.POST("/profile/add-skill", api.AddSkillHandler(db))  // Add skill endpoint

	// Job catalog routes; caller identity travels explicitly in the payload
	jobGroup := r.Group("/jobs")
	jobGroup.POST("", api.CreateJobHandler(jobs, redisClient))           // Post job endpoint
	jobGroup.GET("", api.ListJobsHandler(jobs, redisClient))             // List jobs endpoint
	jobGroup.GET("/categories", api.ListCategoriesHandler(jobs))         // Categories endpoint
	jobGroup.POST("/save", api.ToggleSaveJobHandler(hiring))             // Bookmark toggle endpoint
	jobGroup.GET("/saved/:user_id", api.SavedJobsHandler(jobs))          // Saved jobs endpoint
	jobGroup.GET("/:job_id", api.GetJobHandler(jobs))                    // Job detail endpoint
	jobGroup.DELETE("/:job_id", api.DeleteJobHandler(jobs, redisClient)) // Delete job endpoint

	// Proposal lifecycle routes
	proposalGroup := r.Group("/proposals")
	proposalGroup.POST("", api.SubmitProposalHandler(hiring, redisClient))        // Submit endpoint
	proposalGroup.POST("/accept", api.AcceptProposalHandler(hiring, redisClient)) // Accept endpoint
	proposalGroup.POST("/reject", api.RejectProposalHandler(hiring))              // Reject endpoint
	proposalGroup.POST("/withdraw", api.WithdrawProposalHandler(hiring))          // Withdraw endpoint
	proposalGroup.GET("/job/:job_id", api.ProposalsByJobHandler(jobs))            // Proposals for a job
	proposalGroup.GET("/my/:freelancer_id", api.MyProposalsHandler(jobs))         // Freelancer's proposals

	// Wallet ledger routes
	walletGroup := r.Group("/wallets")
	walletGroup.POST("/topup", api.TopUpHandler(wallets, redisClient))       // Top up endpoint
	walletGroup.POST("/withdraw", api.WithdrawHandler(wallets, redisClient)) // Withdrawal endpoint
	walletGroup.POST("/transfer", api.TransferHandler(wallets, redisClient)) // Transfer endpoint
	walletGroup.GET("/:user_id", api.GetWalletHandler(wallets, redisClient)) // Wallet endpoint
	walletGroup.GET("/:user_id/transactions", api.WalletTransactionsHandler(wallets, redisClient))

	// Messaging routes (protected by JWT)
	messageGroup := r.Group("/messages")
	messageGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	messageGroup.GET("/conversations/:user_id", api.ConversationsHandler(messages)) // Conversations endpoint
	messageGroup.GET("/thread/:user1_id/:user2_id", api.ThreadHandler(messages))    // Thread endpoint
	messageGroup.POST("/send", api.SendMessageHandler(messages))                    // Send endpoint
	messageGroup.POST("/mark-read", api.MarkReadHandler(messages))                  // Mark read endpoint
	messageGroup.GET("/users/:current_user_id", api.ContactsHandler(messages))      // Contacts endpoint
	messageGroup.DELETE("/:message_id", api.DeleteMessageHandler(messages))         // Delete endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.RequireRole(db, domain.RoleAdmin))
	adminGroup.GET("/users", api.ListUsersHandler(db, redisClient))               // List users endpoint
	adminGroup.GET("/transactions", api.ListTransactionsHandler(db, redisClient)) // List transactions endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
