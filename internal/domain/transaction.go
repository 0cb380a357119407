package domain

// Wallet transaction types
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Wallet transaction statuses; withdrawals stay pending until settled
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
)

// WalletTransaction Model. Append-only audit record, never mutated after insert.
type WalletTransaction struct {
	ID          uint    `gorm:"primaryKey" json:"transaction_id"`          // Primary key
	UserID      uint    `gorm:"index;not null" json:"user_id"`             // Owning user
	Type        string  `gorm:"not null" json:"type"`                      // credit or debit
	Amount      float64 `gorm:"type:decimal(12,2);not null" json:"amount"` // Positive amount
	Description string  `json:"description"`                               // Human-readable context
	Status      string  `gorm:"default:completed" json:"status"`           // pending or completed
	CreatedAt   int64   `gorm:"autoCreateTime:milli" json:"created_at"`    // Timestamp of creation in milliseconds
}
