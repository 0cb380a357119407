package domain

// Notification Model. Written best effort; delivery is out of scope.
type Notification struct {
	ID        uint   `gorm:"primaryKey" json:"notification_id"`      // Primary key
	UserID    uint   `gorm:"index;not null" json:"user_id"`          // Recipient
	Type      string `json:"notification_type"`                      // hire, message, ...
	Title     string `json:"title"`                                  // Short headline
	Message   string `gorm:"type:text" json:"message"`               // Body text
	RelatedID *uint  `json:"related_id"`                             // Optional related record id
	IsRead    bool   `gorm:"default:false" json:"is_read"`           // Read flag
	CreatedAt int64  `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
