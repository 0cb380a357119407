package service

import (
	"testing"

	"freelancehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balanceOf(t *testing.T, svc *WalletService, userID uint) float64 {
	t.Helper()
	w, err := svc.GetWallet(userID)
	require.NoError(t, err)
	return w.Balance
}

func TestGetWallet(t *testing.T) {
	db := newTestDB(t)
	svc := NewWalletService(db)

	w, err := svc.GetWallet(7)
	require.NoError(t, err)
	assert.Equal(t, 0.0, w.Balance)
	assert.Equal(t, uint(7), w.UserID)

	// A second read finds the same wallet instead of creating another.
	again, err := svc.GetWallet(7)
	require.NoError(t, err)
	assert.Equal(t, w.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&domain.Wallet{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestTopUpAndWithdraw(t *testing.T) {
	t.Run("withdraw returns the balance to its pre-topup value", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)

		require.NoError(t, svc.TopUp(7, 100, "card"))
		assert.Equal(t, 100.0, balanceOf(t, svc, 7))

		require.NoError(t, svc.Withdraw(7, 100, "bank", "acct123"))
		assert.Equal(t, 0.0, balanceOf(t, svc, 7))
	})

	t.Run("withdraw on an empty wallet fails and changes nothing", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)

		err := svc.Withdraw(7, 1, "bank", "acct123")
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, 0.0, balanceOf(t, svc, 7))

		var count int64
		require.NoError(t, db.Model(&domain.WalletTransaction{}).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})

	t.Run("topup writes a completed credit, withdraw a pending debit", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)

		require.NoError(t, svc.TopUp(7, 200, "card"))
		require.NoError(t, svc.Withdraw(7, 50, "bank", "acct123"))

		var credit, debit domain.WalletTransaction
		require.NoError(t, db.Where("user_id = ? AND type = ?", 7, domain.TransactionCredit).First(&credit).Error)
		require.NoError(t, db.Where("user_id = ? AND type = ?", 7, domain.TransactionDebit).First(&debit).Error)
		assert.Equal(t, domain.TransactionCompleted, credit.Status)
		assert.Equal(t, "Top up via card", credit.Description)
		assert.Equal(t, domain.TransactionPending, debit.Status)
		assert.Equal(t, "Withdrawal to bank: acct123", debit.Description)
	})

	t.Run("non-positive amounts fail validation", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)

		assert.ErrorIs(t, svc.TopUp(7, 0, "card"), ErrValidation)
		assert.ErrorIs(t, svc.Withdraw(7, -5, "bank", ""), ErrValidation)
	})
}

func TestTransfer(t *testing.T) {
	t.Run("moves funds and appends a matched pair", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)
		require.NoError(t, svc.TopUp(7, 50, "card"))

		require.NoError(t, svc.Transfer(7, 9, 50))

		assert.Equal(t, 0.0, balanceOf(t, svc, 7))
		assert.Equal(t, 50.0, balanceOf(t, svc, 9))

		var debit, credit domain.WalletTransaction
		require.NoError(t, db.Where("user_id = ? AND type = ?", 7, domain.TransactionDebit).First(&debit).Error)
		require.NoError(t, db.Where("user_id = ? AND type = ?", 9, domain.TransactionCredit).First(&credit).Error)
		assert.Equal(t, debit.Amount, credit.Amount)
		assert.Equal(t, "Transfer to user 9", debit.Description)
		assert.Equal(t, "Transfer from user 7", credit.Description)
		assert.Equal(t, domain.TransactionCompleted, debit.Status)
		assert.Equal(t, domain.TransactionCompleted, credit.Status)
	})

	t.Run("insufficient balance changes neither wallet", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)
		require.NoError(t, svc.TopUp(7, 30, "card"))

		err := svc.Transfer(7, 9, 50)
		assert.ErrorIs(t, err, ErrInsufficientBalance)
		assert.Equal(t, 30.0, balanceOf(t, svc, 7))
		assert.Equal(t, 0.0, balanceOf(t, svc, 9))

		var count int64
		require.NoError(t, db.Model(&domain.WalletTransaction{}).
			Where("type = ?", domain.TransactionDebit).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})

	t.Run("self transfer fails validation", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewWalletService(db)

		assert.ErrorIs(t, svc.Transfer(7, 7, 10), ErrValidation)
	})
}

// Full walk through the documented user-7 scenario.
func TestWalletScenario(t *testing.T) {
	db := newTestDB(t)
	svc := NewWalletService(db)

	require.NoError(t, svc.TopUp(7, 200, "card"))
	assert.Equal(t, 200.0, balanceOf(t, svc, 7))

	require.NoError(t, svc.Withdraw(7, 50, "bank", "acct123"))
	assert.Equal(t, 150.0, balanceOf(t, svc, 7))

	require.NoError(t, svc.Transfer(7, 9, 100))
	assert.Equal(t, 50.0, balanceOf(t, svc, 7))
	assert.Equal(t, 100.0, balanceOf(t, svc, 9))

	txs, err := svc.Transactions(7, 0)
	require.NoError(t, err)
	assert.Len(t, txs, 3) // topup credit, withdrawal debit, transfer debit

	var total int64
	require.NoError(t, db.Model(&domain.WalletTransaction{}).Count(&total).Error)
	assert.EqualValues(t, 4, total) // plus the transfer credit on user 9
}
