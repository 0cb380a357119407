package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"freelancehub/internal/domain"
	"freelancehub/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires the handlers under test over an in-memory database and no
// Redis. The cache helpers treat a nil client as a miss, so every request
// hits the database.
type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.All()...))

	wallets := service.NewWalletService(db)
	hiring := service.NewHiringService(db, false)
	jobs := service.NewJobService(db)

	r := gin.New()
	r.POST("/proposals", SubmitProposalHandler(hiring, nil))
	r.POST("/proposals/accept", AcceptProposalHandler(hiring, nil))
	r.POST("/proposals/reject", RejectProposalHandler(hiring))
	r.POST("/proposals/withdraw", WithdrawProposalHandler(hiring))
	r.GET("/jobs/:job_id", GetJobHandler(jobs))
	r.DELETE("/jobs/:job_id", DeleteJobHandler(jobs, nil))
	r.GET("/wallets/:user_id", GetWalletHandler(wallets, nil))
	r.GET("/wallets/:user_id/transactions", WalletTransactionsHandler(wallets, nil))
	r.POST("/wallets/topup", TopUpHandler(wallets, nil))
	r.POST("/wallets/withdraw", WithdrawHandler(wallets, nil))
	r.POST("/wallets/transfer", TransferHandler(wallets, nil))

	return &testEnv{db: db, router: r}
}

// do performs one JSON request and decodes the envelope.
func (e *testEnv) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return w.Code, envelope
}
