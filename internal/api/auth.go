package api

import (
	"freelancehub/internal/domain"  // Importing domain models
	"freelancehub/internal/service" // Service layer
	"freelancehub/internal/utils"   // Utility functions
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`           // Display name
	Email    string `json:"email" binding:"required,email"`    // Login email
	Password string `json:"password" binding:"required,min=8"` // Plaintext password, hashed before storage
	Role     string `json:"role"`                              // client or freelancer
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Login email
	Password string `json:"password" binding:"required"` // Plaintext password to verify
}

// RegisterHandler creates a user account with a bcrypt-hashed password
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Name, email and a password of at least 8 characters are required"))
			return
		}
		role := req.Role // Default new accounts to freelancer
		if role != domain.RoleClient && role != domain.RoleFreelancer {
			role = domain.RoleFreelancer
		}
		// Hash the password before storing it
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, fail("Failed to hash password"))
			return
		}
		user := domain.User{
			Name:     req.Name,                   // Display name
			Email:    strings.ToLower(req.Email), // Lowercased for uniqueness
			Password: string(hash),               // Bcrypt hash
			Role:     role,                       // Account role
		}
		// Attempt to create the user in the database
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate email), return bad request
			c.JSON(http.StatusBadRequest, fail("Email already registered"))
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID, // New user
			"role":    role,    // Account role
		}).Info("User registered")
		// Return success response
		c.JSON(http.StatusCreated, success(gin.H{"message": "Registration successful", "user_id": user.ID}))
	}
}

// LoginHandler verifies credentials and returns a JWT token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Email and password are required"))
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, fail("Invalid credentials"))
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, fail("Invalid credentials"))
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Role, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, fail("Failed to generate token"))
			return
		}
		// Return the token and basic account info
		c.JSON(http.StatusOK, success(gin.H{"token": token, "user": user}))
	}
}

// ProfileHandler returns a user's profile with wallet balance and skills
func ProfileHandler(db *gorm.DB, wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, uint(userID)).Error; err != nil {
			// If user not found, return not found
			c.JSON(http.StatusNotFound, fail("User not found"))
			return
		}
		// Wallet balance enriches the profile; lazily created like any read
		wallet, err := wallets.GetWallet(uint(userID))
		if err != nil {
			abortWith(c, err, "Failed to fetch profile")
			return
		}
		// Skills are optional profile data; degrade to empty on failure
		var skills []domain.UserSkill
		_ = db.Where("user_id = ?", uint(userID)).Find(&skills).Error
		// Return profile, wallet and skills
		c.JSON(http.StatusOK, success(gin.H{
			"user":            user,                  // Profile fields
			"wallet_balance":  wallet.Balance,        // Available balance
			"pending_balance": wallet.PendingBalance, // Funds awaiting settlement
			"skills":          skills,                // Self-reported skills
		}))
	}
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	UserID     uint    `json:"user_id" binding:"required"` // Target user
	Name       string  `json:"name" binding:"required"`    // Display name
	Phone      string  `json:"phone"`                      // Contact phone
	Bio        string  `json:"bio"`                        // Profile bio
	Title      string  `json:"title"`                      // Professional title
	HourlyRate float64 `json:"hourly_rate"`                // Advertised hourly rate
}

// UpdateProfileHandler updates a user's editable profile fields
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("User ID and name are required"))
			return
		}
		// Apply the editable fields
		res := db.Model(&domain.User{}).Where("id = ?", req.UserID).Updates(map[string]any{
			"name":        req.Name,       // Display name
			"phone":       req.Phone,      // Contact phone
			"bio":         req.Bio,        // Profile bio
			"title":       req.Title,      // Professional title
			"hourly_rate": req.HourlyRate, // Advertised hourly rate
		})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to update profile"))
			return
		}
		if res.RowsAffected == 0 {
			// If no row matched, return not found
			c.JSON(http.StatusNotFound, fail("User not found"))
			return
		}
		// Log successful update
		logrus.WithFields(logrus.Fields{"user_id": req.UserID}).Info("Profile updated")
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Profile updated successfully"}))
	}
}

// AddSkillRequest represents adding a skill to a profile
type AddSkillRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`    // Target user
	SkillName       string `json:"skill_name" binding:"required"` // Skill to attach
	Proficiency     string `json:"proficiency_level"`             // Self-reported level
	YearsExperience int    `json:"years_experience"`              // Years of experience
}

// AddSkillHandler attaches a skill to a user, creating the skill row on demand
func AddSkillHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddSkillRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("User ID and skill name are required"))
			return
		}
		proficiency := req.Proficiency // Default missing proficiency
		if proficiency == "" {
			proficiency = "intermediate"
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			// Find or create the skill row
			var skill domain.Skill
			if err := tx.Where(domain.Skill{Name: req.SkillName}).FirstOrCreate(&skill).Error; err != nil {
				return err
			}
			// Upsert the user-skill link
			link := domain.UserSkill{
				UserID:          req.UserID,          // Target user
				SkillID:         skill.ID,            // Attached skill
				Proficiency:     proficiency,         // Self-reported level
				YearsExperience: req.YearsExperience, // Years of experience
			}
			res := tx.Model(&domain.UserSkill{}).
				Where("user_id = ? AND skill_id = ?", req.UserID, skill.ID).
				Updates(map[string]any{"proficiency": proficiency, "years_experience": req.YearsExperience})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				return nil // Existing link updated
			}
			return tx.Create(&link).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to add skill"))
			return
		}
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Skill added successfully"}))
	}
}

// ListSkillsHandler returns all skills ordered by name
func ListSkillsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var skills []domain.Skill // Fetch skills from database
		if err := db.Order("name").Find(&skills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to fetch skills"))
			return
		}
		// Return the skills
		c.JSON(http.StatusOK, success(gin.H{"skills": skills}))
	}
}

// NotificationsHandler returns a user's newest notifications
func NotificationsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		var notifications []domain.Notification // Fetch notifications from database
		if err := db.Where("user_id = ?", uint(userID)).
			Order("created_at desc").
			Limit(50).
			Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to fetch notifications"))
			return
		}
		// Return the notifications
		c.JSON(http.StatusOK, success(gin.H{"notifications": notifications}))
	}
}

// MarkNotificationReadHandler flags one notification as read
func MarkNotificationReadHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		notificationID, err := strconv.ParseUint(c.Param("notification_id"), 10, 32) // Parse notification id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid notification ID"))
			return
		}
		// Flag the notification; marking an already-read row is a no-op
		if err := db.Model(&domain.Notification{}).
			Where("id = ?", uint(notificationID)).
			Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, fail("Failed to update notification"))
			return
		}
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Notification marked as read"}))
	}
}
