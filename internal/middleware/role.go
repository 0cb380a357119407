package middleware

import (
	"freelancehub/internal/domain" // Importing domain models
	"net/http"                     // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RequireRole gates a route group on the user's role. The role from the token
// claims is checked first; when absent it falls back to the database so stale
// tokens cannot keep a revoked role.
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized"})
			return
		}
		if claimed, ok := c.Get("userRole"); ok && claimed == role {
			c.Next() // Role claim matches, proceed
			return
		}
		var user domain.User // Fetch user from database
		if err := db.First(&user, userID).Error; err != nil {
			// If user not found or any error, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "Access denied"})
			return
		}
		// Check the stored role
		if user.Role != role {
			// If the role does not match, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "message": "Access denied"})
			return
		}
		// Role matches, proceed to the next handler
		c.Next()
	}
}
