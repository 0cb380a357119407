package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletEndpoints(t *testing.T) {
	env := newTestEnv(t)

	t.Run("get creates an empty wallet on first access", func(t *testing.T) {
		code, body := env.do(t, http.MethodGet, "/wallets/7", nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", body["status"])
		wallet, ok := body["wallet"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 0, wallet["balance"])
	})

	t.Run("topup then get reflects the new balance", func(t *testing.T) {
		code, body := env.do(t, http.MethodPost, "/wallets/topup",
			map[string]any{"user_id": 7, "amount": 200, "method": "card"})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", body["status"])

		code, body = env.do(t, http.MethodGet, "/wallets/7", nil)
		assert.Equal(t, http.StatusOK, code)
		wallet, ok := body["wallet"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 200, wallet["balance"])
	})

	t.Run("withdraw beyond the balance maps to 400", func(t *testing.T) {
		code, body := env.do(t, http.MethodPost, "/wallets/withdraw",
			map[string]any{"user_id": 7, "amount": 9999, "method": "bank", "details": "acct123"})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "Insufficient balance", body["message"])
	})

	t.Run("missing fields are rejected at binding", func(t *testing.T) {
		code, body := env.do(t, http.MethodPost, "/wallets/topup",
			map[string]any{"user_id": 7})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "error", body["status"])
	})

	t.Run("transfer moves funds and history lists both legs", func(t *testing.T) {
		code, body := env.do(t, http.MethodPost, "/wallets/transfer",
			map[string]any{"from_user_id": 7, "to_user_id": 9, "amount": 150})
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "success", body["status"])

		code, body = env.do(t, http.MethodGet, "/wallets/9", nil)
		assert.Equal(t, http.StatusOK, code)
		wallet, ok := body["wallet"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 150, wallet["balance"])

		code, body = env.do(t, http.MethodGet, "/wallets/9/transactions", nil)
		assert.Equal(t, http.StatusOK, code)
		txs, ok := body["transactions"].([]any)
		require.True(t, ok)
		require.Len(t, txs, 1)
		entry, ok := txs[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "credit", entry["type"])
		assert.Equal(t, "Transfer from user 7", entry["description"])
	})

	t.Run("self transfer maps to 400", func(t *testing.T) {
		code, body := env.do(t, http.MethodPost, "/wallets/transfer",
			map[string]any{"from_user_id": 7, "to_user_id": 7, "amount": 10})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "Invalid request", body["message"])
	})

	t.Run("invalid user id in path maps to 400", func(t *testing.T) {
		code, body := env.do(t, http.MethodGet, "/wallets/abc", nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "error", body["status"])
	})
}
