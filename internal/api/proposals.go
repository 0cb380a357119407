package api

import (
	"context"                       // Context for Redis operations
	"freelancehub/internal/service" // Service layer
	"freelancehub/internal/utils"   // Utility functions
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// SubmitProposalRequest represents a proposal submission
type SubmitProposalRequest struct {
	JobID            uint    `json:"job_id" binding:"required"`               // Target job
	FreelancerID     uint    `json:"freelancer_id" binding:"required"`        // Bidding freelancer
	CoverLetter      string  `json:"cover_letter" binding:"required"`         // Pitch text
	ProposedBudget   float64 `json:"proposed_budget" binding:"required,gt=0"` // Bid amount
	ProposedDuration string  `json:"proposed_duration"`                       // Optional bid duration
}

// SubmitProposalHandler lets a freelancer bid on a job
func SubmitProposalHandler(hiring *service.HiringService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SubmitProposalRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("All required fields must be filled"))
			return
		}
		proposalID, err := hiring.SubmitProposal(req.JobID, req.FreelancerID, req.CoverLetter, req.ProposedBudget, req.ProposedDuration)
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"job_id":        req.JobID,        // Target job
				"freelancer_id": req.FreelancerID, // Bidding freelancer
				"error":         err.Error(),      // Error message
			}).Error("Proposal submit failed")
			abortWith(c, err, "Failed to submit proposal")
			return
		}
		// Log successful submission
		logrus.WithFields(logrus.Fields{
			"job_id":        req.JobID,        // Target job
			"freelancer_id": req.FreelancerID, // Bidding freelancer
			"proposal_id":   proposalID,       // New proposal
		}).Info("Proposal submitted")
		invalidateJobCache(rdb, req.JobID) // Proposal counts changed
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Proposal submitted successfully", "proposal_id": proposalID}))
	}
}

// AcceptProposalRequest represents a hire decision
type AcceptProposalRequest struct {
	ProposalID   uint `json:"proposal_id" binding:"required"`   // Winning proposal
	JobID        uint `json:"job_id" binding:"required"`        // Job being assigned
	FreelancerID uint `json:"freelancer_id" binding:"required"` // Freelancer being hired
}

// AcceptProposalHandler hires a freelancer: accepts the proposal, rejects the
// rest and moves the job to in-progress
func AcceptProposalHandler(hiring *service.HiringService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AcceptProposalRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Proposal ID, Job ID, and Freelancer ID are required"))
			return
		}
		if err := hiring.AcceptProposal(req.ProposalID, req.JobID, req.FreelancerID); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"proposal_id":   req.ProposalID,   // Winning proposal
				"job_id":        req.JobID,        // Job being assigned
				"freelancer_id": req.FreelancerID, // Freelancer being hired
				"error":         err.Error(),      // Error message
			}).Error("Accept proposal failed")
			abortWith(c, err, "Failed to accept proposal")
			return
		}
		// Log successful hire
		logrus.WithFields(logrus.Fields{
			"proposal_id":   req.ProposalID,   // Winning proposal
			"job_id":        req.JobID,        // Job being assigned
			"freelancer_id": req.FreelancerID, // Freelancer being hired
		}).Info("Freelancer hired")
		invalidateJobCache(rdb, req.JobID) // Job status and proposals changed
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Freelancer hired successfully! Job is now in progress."}))
	}
}

// ProposalIDRequest targets a single proposal
type ProposalIDRequest struct {
	ProposalID uint `json:"proposal_id" binding:"required"` // Target proposal
}

// RejectProposalHandler turns down a proposal
func RejectProposalHandler(hiring *service.HiringService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProposalIDRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Proposal ID is required"))
			return
		}
		if err := hiring.RejectProposal(req.ProposalID); err != nil {
			abortWith(c, err, "Failed to reject proposal")
			return
		}
		// Log successful rejection
		logrus.WithFields(logrus.Fields{"proposal_id": req.ProposalID}).Info("Proposal rejected")
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Proposal rejected successfully"}))
	}
}

// WithdrawProposalHandler lets a freelancer pull a still-pending proposal
func WithdrawProposalHandler(hiring *service.HiringService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProposalIDRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Proposal ID is required"))
			return
		}
		if err := hiring.WithdrawProposal(req.ProposalID); err != nil {
			abortWith(c, err, "Proposal not found or already processed")
			return
		}
		// Log successful withdrawal
		logrus.WithFields(logrus.Fields{"proposal_id": req.ProposalID}).Info("Proposal withdrawn")
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Proposal withdrawn successfully"}))
	}
}

// ProposalsByJobHandler returns all proposals on a job
func ProposalsByJobHandler(jobs *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32) // Parse job id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid job ID"))
			return
		}
		proposals, err := jobs.ProposalsByJob(uint(jobID))
		if err != nil {
			abortWith(c, err, "Failed to fetch proposals")
			return
		}
		// Return the proposals
		c.JSON(http.StatusOK, success(gin.H{"proposals": proposals}))
	}
}

// MyProposalsHandler returns a freelancer's own proposals
func MyProposalsHandler(jobs *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		freelancerID, err := strconv.ParseUint(c.Param("freelancer_id"), 10, 32) // Parse freelancer id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid freelancer ID"))
			return
		}
		proposals, err := jobs.ProposalsByFreelancer(uint(freelancerID))
		if err != nil {
			abortWith(c, err, "Failed to fetch proposals")
			return
		}
		// Return the proposals
		c.JSON(http.StatusOK, success(gin.H{"proposals": proposals}))
	}
}

// invalidateJobCache drops the cached listing and detail entries for a job
func invalidateJobCache(rdb *redis.Client, jobID uint) {
	ctx := context.Background()                                      // Context for Redis operations
	_ = utils.DeleteCache(ctx, rdb, "jobs:all")                      // Invalidate listing cache
	_ = utils.DeleteCache(ctx, rdb, "job:"+strconv.Itoa(int(jobID))) // Invalidate detail cache
}
