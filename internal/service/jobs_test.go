package service

import (
	"testing"

	"freelancehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// createUser inserts a user fixture with the given role.
func createUser(t *testing.T, db *gorm.DB, role string) domain.User {
	t.Helper()
	u := domain.User{
		Name:     "Fixture User",
		Email:    role + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestCreateJob(t *testing.T) {
	t.Run("client posts a pending job with skills attached", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewJobService(db)
		client := createUser(t, db, domain.RoleClient)
		skill := domain.Skill{Name: "Go"}
		require.NoError(t, db.Create(&skill).Error)

		id, err := svc.CreateJob(CreateJobInput{
			ClientID:        client.ID,
			Title:           "API backend",
			Description:     "REST service",
			ExperienceLevel: "expert",
			Skills:          []uint{skill.ID},
		})
		require.NoError(t, err)

		var job domain.Job
		require.NoError(t, db.First(&job, id).Error)
		assert.Equal(t, domain.JobStatusPending, job.Status)
		assert.Equal(t, domain.ExperienceExpert, job.ExperienceLevel)
		assert.Equal(t, domain.BudgetTypeFixed, job.BudgetType)

		var links int64
		require.NoError(t, db.Model(&domain.JobSkill{}).Where("job_id = ?", id).Count(&links).Error)
		assert.EqualValues(t, 1, links)
	})

	t.Run("entry level maps onto beginner", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewJobService(db)
		client := createUser(t, db, domain.RoleClient)

		id, err := svc.CreateJob(CreateJobInput{
			ClientID:        client.ID,
			Title:           "Logo design",
			Description:     "One logo",
			ExperienceLevel: "entry",
		})
		require.NoError(t, err)

		var job domain.Job
		require.NoError(t, db.First(&job, id).Error)
		assert.Equal(t, domain.ExperienceBeginner, job.ExperienceLevel)
	})

	t.Run("unknown level defaults to intermediate", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewJobService(db)
		client := createUser(t, db, domain.RoleClient)

		id, err := svc.CreateJob(CreateJobInput{
			ClientID:    client.ID,
			Title:       "Copywriting",
			Description: "Ten articles",
		})
		require.NoError(t, err)

		var job domain.Job
		require.NoError(t, db.First(&job, id).Error)
		assert.Equal(t, domain.ExperienceIntermediate, job.ExperienceLevel)
	})

	t.Run("freelancers may not post", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewJobService(db)
		freelancer := createUser(t, db, domain.RoleFreelancer)

		_, err := svc.CreateJob(CreateJobInput{
			ClientID:    freelancer.ID,
			Title:       "Nope",
			Description: "Nope",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown client", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewJobService(db)

		_, err := svc.CreateJob(CreateJobInput{ClientID: 404, Title: "T", Description: "D"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)
	job := createJob(t, db, 1)
	createProposal(t, db, job.ID, 55)
	createProposal(t, db, job.ID, 56)

	listing, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, listing.TotalProposals)

	// Each read bumps the view counter.
	_, err = svc.GetJob(job.ID)
	require.NoError(t, err)
	var fresh domain.Job
	require.NoError(t, db.First(&fresh, job.ID).Error)
	assert.EqualValues(t, 2, fresh.ViewsCount)

	_, err = svc.GetJob(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobEnrichment(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	cat := domain.JobCategory{Name: "Web Development"}
	require.NoError(t, db.Create(&cat).Error)
	goSkill := domain.Skill{Name: "Go"}
	sqlSkill := domain.Skill{Name: "SQL"}
	require.NoError(t, db.Create(&goSkill).Error)
	require.NoError(t, db.Create(&sqlSkill).Error)

	job := domain.Job{
		ClientID:    1,
		CategoryID:  &cat.ID,
		Title:       "Data pipeline",
		Description: "ETL work",
		Status:      domain.JobStatusPending,
	}
	require.NoError(t, db.Create(&job).Error)
	require.NoError(t, db.Create(&domain.JobSkill{JobID: job.ID, SkillID: goSkill.ID}).Error)
	require.NoError(t, db.Create(&domain.JobSkill{JobID: job.ID, SkillID: sqlSkill.ID}).Error)

	listing, err := svc.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go, SQL", listing.RequiredSkills)
	assert.Equal(t, "Web Development", listing.CategoryName)

	// A job without category or skills still lists, just unenriched.
	bare := createJob(t, db, 1)
	listing, err = svc.GetJob(bare.ID)
	require.NoError(t, err)
	assert.Empty(t, listing.RequiredSkills)
	assert.Empty(t, listing.CategoryName)
}

func TestListJobs(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	cat := domain.JobCategory{Name: "Design"}
	require.NoError(t, db.Create(&cat).Error)
	jobs := []domain.Job{
		{ClientID: 1, Title: "A", Description: "a", CategoryID: &cat.ID, ExperienceLevel: domain.ExperienceBeginner, BudgetMin: 100, BudgetMax: 200, Status: domain.JobStatusPending},
		{ClientID: 1, Title: "B", Description: "b", ExperienceLevel: domain.ExperienceExpert, BudgetMin: 500, BudgetMax: 900, Status: domain.JobStatusPending},
		{ClientID: 2, Title: "C", Description: "c", ExperienceLevel: domain.ExperienceExpert, BudgetMin: 50, BudgetMax: 80, Status: domain.JobStatusPending},
	}
	for i := range jobs {
		require.NoError(t, db.Create(&jobs[i]).Error)
	}

	all, err := svc.ListJobs(JobFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byCat, err := svc.ListJobs(JobFilter{CategoryID: cat.ID})
	require.NoError(t, err)
	require.Len(t, byCat, 1)
	assert.Equal(t, "A", byCat[0].Title)

	byLevel, err := svc.ListJobs(JobFilter{ExperienceLevel: domain.ExperienceExpert})
	require.NoError(t, err)
	assert.Len(t, byLevel, 2)

	byBudget, err := svc.ListJobs(JobFilter{BudgetMin: 400})
	require.NoError(t, err)
	require.Len(t, byBudget, 1)
	assert.Equal(t, "B", byBudget[0].Title)
}

func TestDeleteJob(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(db)

	t.Run("owner deletes a pending job", func(t *testing.T) {
		job := createJob(t, db, 1)
		require.NoError(t, svc.DeleteJob(job.ID, 1))
		var count int64
		require.NoError(t, db.Model(&domain.Job{}).Where("id = ?", job.ID).Count(&count).Error)
		assert.EqualValues(t, 0, count)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		job := createJob(t, db, 1)
		assert.ErrorIs(t, svc.DeleteJob(job.ID, 2), ErrNotFound)
	})

	t.Run("in-progress jobs are not deletable", func(t *testing.T) {
		job := createJob(t, db, 1)
		require.NoError(t, db.Model(&domain.Job{}).Where("id = ?", job.ID).
			Update("status", domain.JobStatusInProgress).Error)
		assert.ErrorIs(t, svc.DeleteJob(job.ID, 1), ErrNotFound)
	})
}

func TestSavedJobs(t *testing.T) {
	db := newTestDB(t)
	jobs := NewJobService(db)
	hiring := NewHiringService(db, false)

	kept := createJob(t, db, 1)
	doomed := createJob(t, db, 1)
	saved, err := hiring.ToggleSaveJob(9, kept.ID)
	require.NoError(t, err)
	assert.True(t, saved)
	_, err = hiring.ToggleSaveJob(9, doomed.ID)
	require.NoError(t, err)

	// Bookmarks pointing at deleted jobs disappear from the listing.
	require.NoError(t, jobs.DeleteJob(doomed.ID, 1))

	listings, err := jobs.SavedJobs(9)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, kept.ID, listings[0].ID)
}
