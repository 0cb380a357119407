package domain

// Job statuses; transitions happen only through the hiring service
const (
	JobStatusPending    = "pending"
	JobStatusInProgress = "in-progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Budget types
const (
	BudgetTypeFixed  = "fixed"
	BudgetTypeHourly = "hourly"
)

// Experience levels
const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

// Job Model. AssignedFreelancerID is non-nil iff status is in-progress or completed.
type Job struct {
	ID                   uint    `gorm:"primaryKey" json:"job_id"`                     // Primary key
	ClientID             uint    `gorm:"index;not null" json:"client_id"`              // Owning client
	CategoryID           *uint   `json:"category_id"`                                  // Optional category
	Title                string  `gorm:"not null" json:"title"`                        // Job title
	Description          string  `gorm:"type:text;not null" json:"description"`        // Job description
	Requirements         string  `gorm:"type:text" json:"requirements"`                // Free-form requirements
	BudgetType           string  `gorm:"default:fixed" json:"budget_type"`             // fixed or hourly
	BudgetMin            float64 `gorm:"type:decimal(12,2)" json:"budget_min"`         // Budget range lower bound
	BudgetMax            float64 `gorm:"type:decimal(12,2)" json:"budget_max"`         // Budget range upper bound
	Duration             string  `json:"duration"`                                     // Expected duration
	ExperienceLevel      string  `gorm:"default:intermediate" json:"experience_level"` // beginner .. expert
	Deadline             string  `json:"deadline"`                                     // Optional deadline
	Status               string  `gorm:"default:pending;index" json:"status"`          // pending, in-progress, completed, cancelled
	AssignedFreelancerID *uint   `json:"assigned_freelancer_id"`                       // Set when hired
	ViewsCount           uint    `gorm:"default:0" json:"views_count"`                 // Incremented on read
	CreatedAt            int64   `gorm:"autoCreateTime:milli" json:"created_at"`       // Timestamp of creation in milliseconds
}
