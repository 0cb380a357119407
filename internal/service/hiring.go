package service

import (
	"errors"

	"freelancehub/internal/domain"

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// HiringService owns the proposal lifecycle and the job assignment state
// machine. Every multi-statement write runs inside a single transaction with
// guarded compare-and-set updates, so two concurrent accepts on the same job
// cannot both succeed and the single-accepted-proposal invariant holds.
type HiringService struct {
	db              *gorm.DB
	strictProposals bool // when set, proposals against non-pending jobs are refused
}

// NewHiringService creates a HiringService.
func NewHiringService(db *gorm.DB, strictProposals bool) *HiringService {
	return &HiringService{db: db, strictProposals: strictProposals}
}

// SubmitProposal inserts a pending proposal for the (job, freelancer) pair.
// A second submission for the same pair fails with ErrDuplicateProposal.
func (s *HiringService) SubmitProposal(jobID, freelancerID uint, coverLetter string, proposedBudget float64, proposedDuration string) (uint, error) {
	if jobID == 0 || freelancerID == 0 || coverLetter == "" || proposedBudget <= 0 {
		return 0, ErrValidation
	}
	var proposal domain.Proposal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var job domain.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		// Late proposals against assigned or closed jobs are allowed unless
		// strict mode is on.
		if s.strictProposals && job.Status != domain.JobStatusPending {
			return ErrJobUnavailable
		}
		proposal = domain.Proposal{
			JobID:            jobID,
			FreelancerID:     freelancerID,
			CoverLetter:      coverLetter,
			ProposedBudget:   proposedBudget,
			ProposedDuration: proposedDuration,
			Status:           domain.ProposalStatusPending,
		}
		// The unique index on (job_id, freelancer_id) is the duplicate check;
		// it also picks the loser of two concurrent submits.
		if err := tx.Create(&proposal).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateProposal
			}
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return proposal.ID, nil
}

// AcceptProposal marks the target proposal accepted, rejects every other
// proposal on the job and moves the job to in-progress with the freelancer
// assigned. All three updates commit or roll back together: after a nil
// return, exactly one proposal for the job is accepted and the job carries
// the freelancer. A commit-phase store error surfaces as *PartialFailureError
// because the outcome on the store is unknown.
func (s *HiringService) AcceptProposal(proposalID, jobID, freelancerID uint) error {
	if proposalID == 0 || jobID == 0 || freelancerID == 0 {
		return ErrValidation
	}
	applied := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Guard on status=pending: a concurrent accept that got there first
		// leaves zero matching rows and this call rolls back cleanly.
		res := tx.Model(&domain.Proposal{}).
			Where("id = ? AND job_id = ? AND freelancer_id = ? AND status = ?",
				proposalID, jobID, freelancerID, domain.ProposalStatusPending).
			Update("status", domain.ProposalStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Model(&domain.Proposal{}).
			Where("job_id = ? AND id != ?", jobID, proposalID).
			Update("status", domain.ProposalStatusRejected).Error; err != nil {
			return err
		}
		res = tx.Model(&domain.Job{}).
			Where("id = ? AND status = ?", jobID, domain.JobStatusPending).
			Updates(map[string]any{
				"status":                 domain.JobStatusInProgress,
				"assigned_freelancer_id": freelancerID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrJobUnavailable
		}
		applied = true
		return nil
	})
	if err != nil {
		if applied {
			// Every statement went through, so the failure came from the
			// commit itself. Flag for reconciliation rather than total failure.
			return &PartialFailureError{Op: "accept proposal", Err: err}
		}
		return err
	}
	s.notifyHire(jobID, freelancerID)
	return nil
}

// RejectProposal marks a proposal rejected. Fails with ErrNotFound when no
// row was affected.
func (s *HiringService) RejectProposal(proposalID uint) error {
	if proposalID == 0 {
		return ErrValidation
	}
	res := s.db.Model(&domain.Proposal{}).
		Where("id = ?", proposalID).
		Update("status", domain.ProposalStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// WithdrawProposal deletes a proposal that is still pending. Already processed
// and nonexistent proposals are indistinguishable to the caller: both report
// ErrNotFound.
func (s *HiringService) WithdrawProposal(proposalID uint) error {
	if proposalID == 0 {
		return ErrValidation
	}
	res := s.db.
		Where("id = ? AND status = ?", proposalID, domain.ProposalStatusPending).
		Delete(&domain.Proposal{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleSaveJob flips the bookmark for (user, job): saves the job if absent,
// removes it if present. Returns whether the job is saved after the call.
func (s *HiringService) ToggleSaveJob(userID, jobID uint) (bool, error) {
	if userID == 0 || jobID == 0 {
		return false, ErrValidation
	}
	saved := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&domain.SavedJob{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil // was saved, now removed
		}
		saved = true
		return tx.Create(&domain.SavedJob{UserID: userID, JobID: jobID}).Error
	})
	return saved, err
}

// notifyHire writes a hire notification for the freelancer. Best effort: a
// failure here logs and never fails the accept.
func (s *HiringService) notifyHire(jobID, freelancerID uint) {
	n := domain.Notification{
		UserID:    freelancerID,
		Type:      "hire",
		Title:     "You got hired",
		Message:   "Your proposal was accepted. The job is now in progress.",
		RelatedID: &jobID,
	}
	if err := s.db.Create(&n).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"job_id":        jobID,        // Affected job
			"freelancer_id": freelancerID, // Hired freelancer
			"error":         err.Error(),  // Error message
		}).Warn("Hire notification failed")
	}
}
