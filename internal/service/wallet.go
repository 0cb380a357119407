package service

import (
	"fmt"

	"freelancehub/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// WalletService enforces the ledger's balance rules. Balance checks run as
// part of the guarded update statement itself (balance >= amount in the
// WHERE clause), so concurrent withdrawals or transfers cannot both pass a
// stale check and drive a balance negative.
type WalletService struct {
	db *gorm.DB
}

// NewWalletService creates a WalletService.
func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// GetWallet returns the user's wallet, creating an empty one on first access.
func (s *WalletService) GetWallet(userID uint) (*domain.Wallet, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	var wallet domain.Wallet
	if err := s.db.Where(domain.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

// TopUp credits the wallet and appends a completed credit transaction.
// Never fails on balance grounds.
func (s *WalletService) TopUp(userID uint, amount float64, method string) error {
	if userID == 0 || amount <= 0 {
		return ErrValidation
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var wallet domain.Wallet
		if err := tx.Where(domain.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error; err != nil {
			return err
		}
		if err := tx.Model(&domain.Wallet{}).Where("user_id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}
		t := domain.WalletTransaction{
			UserID:      userID,
			Type:        domain.TransactionCredit,
			Amount:      amount,
			Description: fmt.Sprintf("Top up via %s", method),
			Status:      domain.TransactionCompleted,
		}
		return tx.Create(&t).Error
	})
}

// Withdraw debits the wallet if it covers the amount and appends a pending
// debit transaction. Withdrawal is a request, not an instant settlement, so
// the ledger row stays pending until settled out of band.
func (s *WalletService) Withdraw(userID uint, amount float64, method, details string) error {
	if userID == 0 || amount <= 0 {
		return ErrValidation
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var wallet domain.Wallet
		if err := tx.Where(domain.Wallet{UserID: userID}).FirstOrCreate(&wallet).Error; err != nil {
			return err
		}
		res := tx.Model(&domain.Wallet{}).
			Where("user_id = ? AND balance >= ?", userID, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}
		t := domain.WalletTransaction{
			UserID:      userID,
			Type:        domain.TransactionDebit,
			Amount:      amount,
			Description: fmt.Sprintf("Withdrawal to %s: %s", method, details),
			Status:      domain.TransactionPending,
		}
		return tx.Create(&t).Error
	})
}

// Transfer moves funds between two users and appends a matched debit/credit
// pair referencing each other's user id. Deduct, credit and both ledger rows
// commit or roll back together; there is no compensating write. A commit-phase
// store error surfaces as *PartialFailureError.
func (s *WalletService) Transfer(fromUserID, toUserID uint, amount float64) error {
	if fromUserID == 0 || toUserID == 0 || amount <= 0 {
		return ErrValidation
	}
	if fromUserID == toUserID {
		return ErrValidation
	}
	applied := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, id := range []uint{fromUserID, toUserID} {
			var w domain.Wallet
			if err := tx.Where(domain.Wallet{UserID: id}).FirstOrCreate(&w).Error; err != nil {
				return err
			}
		}
		res := tx.Model(&domain.Wallet{}).
			Where("user_id = ? AND balance >= ?", fromUserID, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientBalance
		}
		if err := tx.Model(&domain.Wallet{}).Where("user_id = ?", toUserID).
			Update("balance", gorm.Expr("balance + ?", amount)).Error; err != nil {
			return err
		}
		pair := []domain.WalletTransaction{
			{
				UserID:      fromUserID,
				Type:        domain.TransactionDebit,
				Amount:      amount,
				Description: fmt.Sprintf("Transfer to user %d", toUserID),
				Status:      domain.TransactionCompleted,
			},
			{
				UserID:      toUserID,
				Type:        domain.TransactionCredit,
				Amount:      amount,
				Description: fmt.Sprintf("Transfer from user %d", fromUserID),
				Status:      domain.TransactionCompleted,
			},
		}
		if err := tx.Create(&pair).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		if applied {
			return &PartialFailureError{Op: "transfer", Err: err}
		}
		return err
	}
	return nil
}

// Transactions returns the newest ledger entries for a user, capped at limit
// (default 50, max 100).
func (s *WalletService) Transactions(userID uint, limit int) ([]domain.WalletTransaction, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var txs []domain.WalletTransaction
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&txs).Error
	return txs, err
}
