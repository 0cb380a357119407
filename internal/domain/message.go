package domain

// Message Model. Direct message between two users.
type Message struct {
	ID         uint   `gorm:"primaryKey" json:"message_id"`           // Primary key
	SenderID   uint   `gorm:"index;not null" json:"sender_id"`        // Sending user
	ReceiverID uint   `gorm:"index;not null" json:"receiver_id"`      // Receiving user
	Text       string `gorm:"type:text;not null" json:"message_text"` // Message body
	IsRead     bool   `gorm:"default:false" json:"is_read"`           // Read flag
	SentAt     int64  `gorm:"autoCreateTime:milli" json:"sent_at"`    // Timestamp of sending in milliseconds
}
