package service

import (
	"testing"

	"freelancehub/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection, so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.All()...))
	return db
}

// createJob inserts a pending job fixture.
func createJob(t *testing.T, db *gorm.DB, clientID uint) domain.Job {
	t.Helper()
	job := domain.Job{
		ClientID:    clientID,
		Title:       "Build a landing page",
		Description: "Five sections, responsive",
		Status:      domain.JobStatusPending,
	}
	require.NoError(t, db.Create(&job).Error)
	return job
}

// createProposal inserts a pending proposal fixture.
func createProposal(t *testing.T, db *gorm.DB, jobID, freelancerID uint) domain.Proposal {
	t.Helper()
	p := domain.Proposal{
		JobID:          jobID,
		FreelancerID:   freelancerID,
		CoverLetter:    "I can do this",
		ProposedBudget: 300,
		Status:         domain.ProposalStatusPending,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}
