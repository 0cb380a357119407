package domain

// User roles
const (
	RoleClient     = "client"
	RoleFreelancer = "freelancer"
	RoleAdmin      = "admin"
)

// User Model
type User struct {
	ID             uint    `gorm:"primaryKey" json:"user_id"`              // Primary key
	Name           string  `gorm:"not null" json:"name"`                   // Display name
	Email          string  `gorm:"unique;not null" json:"email"`           // Unique email, login identifier
	Password       string  `gorm:"not null" json:"-"`                      // Bcrypt hash, never serialized
	Role           string  `gorm:"default:freelancer" json:"role"`         // client, freelancer or admin
	Phone          string  `json:"phone"`                                  // Contact phone
	Bio            string  `gorm:"type:text" json:"bio"`                   // Profile bio
	Title          string  `json:"title"`                                  // Professional title
	HourlyRate     float64 `gorm:"type:decimal(10,2)" json:"hourly_rate"`  // Advertised hourly rate
	ProfilePicture string  `json:"profile_picture"`                        // Avatar URL
	CreatedAt      int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
