package domain

// Wallet Model. One per user, lazily created on first access. Balance never goes
// below zero after a committed operation.
type Wallet struct {
	ID             uint    `gorm:"primaryKey" json:"wallet_id"`                                  // Primary key
	UserID         uint    `gorm:"uniqueIndex" json:"user_id"`                                   // Owning user
	Balance        float64 `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`         // Available balance
	PendingBalance float64 `gorm:"type:decimal(12,2);not null;default:0" json:"pending_balance"` // Funds awaiting settlement
	CreatedAt      int64   `gorm:"autoCreateTime:milli" json:"created_at"`                       // Timestamp of creation in milliseconds
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli" json:"updated_at"`                       // Timestamp of last balance change
}
