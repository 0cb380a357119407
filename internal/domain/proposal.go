package domain

// Proposal statuses
const (
	ProposalStatusPending  = "pending"
	ProposalStatusAccepted = "accepted"
	ProposalStatusRejected = "rejected"
)

// Proposal Model. One row per (job, freelancer) pair; at most one accepted per job.
type Proposal struct {
	ID               uint    `gorm:"primaryKey" json:"proposal_id"`                                // Primary key
	JobID            uint    `gorm:"uniqueIndex:idx_job_freelancer;not null" json:"job_id"`        // Target job
	FreelancerID     uint    `gorm:"uniqueIndex:idx_job_freelancer;not null" json:"freelancer_id"` // Bidding freelancer
	CoverLetter      string  `gorm:"type:text;not null" json:"cover_letter"`                       // Pitch text
	ProposedBudget   float64 `gorm:"type:decimal(12,2);not null" json:"proposed_budget"`           // Bid amount
	ProposedDuration string  `json:"proposed_duration"`                                            // Optional bid duration
	Status           string  `gorm:"default:pending;index" json:"status"`                          // pending, accepted, rejected
	CreatedAt        int64   `gorm:"autoCreateTime:milli" json:"submitted_at"`                     // Timestamp of submission in milliseconds
}
