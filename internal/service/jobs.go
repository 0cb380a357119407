package service

import (
	"errors"
	"strings"

	"freelancehub/internal/domain"

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// experienceAliases maps accepted client-side level names onto stored ones.
var experienceAliases = map[string]string{
	"entry":        domain.ExperienceBeginner,
	"beginner":     domain.ExperienceBeginner,
	"intermediate": domain.ExperienceIntermediate,
	"advanced":     domain.ExperienceAdvanced,
	"expert":       domain.ExperienceExpert,
}

// JobListing is a job enriched with read-side lookups. Each enrichment is a
// separate query that degrades to a zero/empty value on failure instead of
// failing the listing.
type JobListing struct {
	domain.Job
	TotalProposals int64  `json:"total_proposals"` // Proposal count
	RequiredSkills string `json:"required_skills"` // Comma-joined skill names
	CategoryName   string `json:"category_name"`   // Resolved category name
}

// JobFilter narrows job listings. Zero values mean no filtering.
type JobFilter struct {
	CategoryID      uint
	ExperienceLevel string
	BudgetMin       float64
	BudgetMax       float64
}

// CreateJobInput carries everything needed to post a job.
type CreateJobInput struct {
	ClientID        uint
	CategoryID      *uint
	Title           string
	Description     string
	Requirements    string
	BudgetType      string
	BudgetMin       float64
	BudgetMax       float64
	Duration        string
	ExperienceLevel string
	Deadline        string
	Skills          []uint // skill ids to attach
}

// JobService covers the job catalog: posting, reading with enrichment,
// listing with filters and owner deletion.
type JobService struct {
	db *gorm.DB
}

// NewJobService creates a JobService.
func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// CreateJob posts a pending job for a client, attaching any required skills.
// Only users with the client role may post.
func (s *JobService) CreateJob(in CreateJobInput) (uint, error) {
	if in.ClientID == 0 || in.Title == "" || in.Description == "" {
		return 0, ErrValidation
	}
	var client domain.User
	if err := s.db.First(&client, in.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if client.Role != domain.RoleClient {
		return 0, ErrValidation
	}
	level, ok := experienceAliases[in.ExperienceLevel]
	if !ok {
		level = domain.ExperienceIntermediate
	}
	budgetType := in.BudgetType
	if budgetType == "" {
		budgetType = domain.BudgetTypeFixed
	}
	job := domain.Job{
		ClientID:        in.ClientID,
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Description:     in.Description,
		Requirements:    in.Requirements,
		BudgetType:      budgetType,
		BudgetMin:       in.BudgetMin,
		BudgetMax:       in.BudgetMax,
		Duration:        in.Duration,
		ExperienceLevel: level,
		Deadline:        in.Deadline,
		Status:          domain.JobStatusPending,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&job).Error; err != nil {
			return err
		}
		for _, skillID := range in.Skills {
			if err := tx.Create(&domain.JobSkill{JobID: job.ID, SkillID: skillID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return job.ID, nil
}

// GetJob returns one enriched job and bumps its view counter. The counter
// increment is best effort.
func (s *JobService) GetJob(jobID uint) (*JobListing, error) {
	if jobID == 0 {
		return nil, ErrValidation
	}
	var job domain.Job
	if err := s.db.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	listing := s.enrich(job)
	if err := s.db.Model(&domain.Job{}).Where("id = ?", jobID).
		Update("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id": jobID,       // Viewed job
			"error":  err.Error(), // Error message
		}).Warn("View count update failed")
	}
	return listing, nil
}

// ListJobs returns enriched jobs matching the filter, newest first.
func (s *JobService) ListJobs(f JobFilter) ([]JobListing, error) {
	q := s.db.Model(&domain.Job{})
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.ExperienceLevel != "" {
		q = q.Where("experience_level = ?", f.ExperienceLevel)
	}
	if f.BudgetMin > 0 {
		q = q.Where("budget_min >= ?", f.BudgetMin)
	}
	if f.BudgetMax > 0 {
		q = q.Where("budget_max <= ?", f.BudgetMax)
	}
	var jobs []domain.Job
	if err := q.Order("created_at desc").Find(&jobs).Error; err != nil {
		return nil, err
	}
	listings := make([]JobListing, 0, len(jobs))
	for _, job := range jobs {
		listings = append(listings, *s.enrich(job))
	}
	return listings, nil
}

// DeleteJob hard-deletes a job, but only for its owner and only while the job
// is still pending.
func (s *JobService) DeleteJob(jobID, clientID uint) error {
	if jobID == 0 || clientID == 0 {
		return ErrValidation
	}
	res := s.db.
		Where("id = ? AND client_id = ? AND status = ?", jobID, clientID, domain.JobStatusPending).
		Delete(&domain.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns all job categories ordered by name.
func (s *JobService) ListCategories() ([]domain.JobCategory, error) {
	var categories []domain.JobCategory
	err := s.db.Order("name").Find(&categories).Error
	return categories, err
}

// ProposalsByJob returns all proposals on a job, newest first.
func (s *JobService) ProposalsByJob(jobID uint) ([]domain.Proposal, error) {
	if jobID == 0 {
		return nil, ErrValidation
	}
	var proposals []domain.Proposal
	err := s.db.Where("job_id = ?", jobID).Order("created_at desc").Find(&proposals).Error
	return proposals, err
}

// ProposalsByFreelancer returns a freelancer's proposals, newest first.
func (s *JobService) ProposalsByFreelancer(freelancerID uint) ([]domain.Proposal, error) {
	if freelancerID == 0 {
		return nil, ErrValidation
	}
	var proposals []domain.Proposal
	err := s.db.Where("freelancer_id = ?", freelancerID).Order("created_at desc").Find(&proposals).Error
	return proposals, err
}

// SavedJobs returns a user's bookmarked jobs as enriched listings. A bookmark
// pointing at a deleted job is skipped.
func (s *JobService) SavedJobs(userID uint) ([]JobListing, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	var bookmarks []domain.SavedJob
	if err := s.db.Where("user_id = ?", userID).Order("created_at desc").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	listings := make([]JobListing, 0, len(bookmarks))
	for _, b := range bookmarks {
		var job domain.Job
		if err := s.db.First(&job, b.JobID).Error; err != nil {
			continue
		}
		listings = append(listings, *s.enrich(job))
	}
	return listings, nil
}

// enrich composes the read-side lookups for one job: proposal count, required
// skill names and category name. Per-field degradation on lookup failure.
func (s *JobService) enrich(job domain.Job) *JobListing {
	listing := &JobListing{Job: job}
	var count int64
	if err := s.db.Model(&domain.Proposal{}).Where("job_id = ?", job.ID).Count(&count).Error; err == nil {
		listing.TotalProposals = count
	}
	var names []string
	if err := s.db.Model(&domain.Skill{}).
		Joins("JOIN job_skills ON job_skills.skill_id = skills.id").
		Where("job_skills.job_id = ?", job.ID).
		Order("skills.name").
		Pluck("skills.name", &names).Error; err == nil {
		listing.RequiredSkills = strings.Join(names, ", ")
	}
	if job.CategoryID != nil {
		var cat domain.JobCategory
		if err := s.db.First(&cat, *job.CategoryID).Error; err == nil {
			listing.CategoryName = cat.Name
		}
	}
	return listing
}
