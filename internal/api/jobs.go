package api

import (
	"context"                       // Context for Redis operations
	"freelancehub/internal/service" // Service layer
	"freelancehub/internal/utils"   // Utility functions
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion
	"time"                          // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateJobRequest represents a job posting
type CreateJobRequest struct {
	ClientID        uint    `json:"client_id" binding:"required"`   // Posting client
	CategoryID      *uint   `json:"category_id"`                    // Optional category
	Title           string  `json:"title" binding:"required"`       // Job title
	Description     string  `json:"description" binding:"required"` // Job description
	Requirements    string  `json:"requirements"`                   // Free-form requirements
	BudgetType      string  `json:"budget_type"`                    // fixed or hourly
	BudgetMin       float64 `json:"budget_min"`                     // Budget range lower bound
	BudgetMax       float64 `json:"budget_max"`                     // Budget range upper bound
	Duration        string  `json:"duration"`                       // Expected duration
	ExperienceLevel string  `json:"experience_level"`               // entry .. expert
	Deadline        string  `json:"deadline"`                       // Optional deadline
	Skills          []uint  `json:"skills"`                         // Required skill ids
}

// CreateJobHandler posts a new job
func CreateJobHandler(jobs *service.JobService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateJobRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Client ID, title and description are required"))
			return
		}
		jobID, err := jobs.CreateJob(service.CreateJobInput{
			ClientID:        req.ClientID,
			CategoryID:      req.CategoryID,
			Title:           req.Title,
			Description:     req.Description,
			Requirements:    req.Requirements,
			BudgetType:      req.BudgetType,
			BudgetMin:       req.BudgetMin,
			BudgetMax:       req.BudgetMax,
			Duration:        req.Duration,
			ExperienceLevel: req.ExperienceLevel,
			Deadline:        req.Deadline,
			Skills:          req.Skills,
		})
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"client_id": req.ClientID, // Posting client
				"title":     req.Title,    // Job title
				"error":     err.Error(),  // Error message
			}).Error("Job create failed")
			abortWith(c, err, "Failed to create job")
			return
		}
		// Log successful posting
		logrus.WithFields(logrus.Fields{
			"client_id": req.ClientID, // Posting client
			"job_id":    jobID,        // New job
		}).Info("Job posted")
		_ = utils.DeleteCache(context.Background(), rdb, "jobs:all") // Invalidate listing cache
		// Return success response
		c.JSON(http.StatusCreated, success(gin.H{"message": "Job posted successfully!", "job_id": jobID}))
	}
}

// ListJobsHandler returns enriched jobs, optionally filtered. The unfiltered
// listing is cached
func ListJobsHandler(jobs *service.JobService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter service.JobFilter // Filter built from query params
		if v := c.Query("category_id"); v != "" {
			if id, err := strconv.ParseUint(v, 10, 32); err == nil {
				filter.CategoryID = uint(id) // Category filter
			}
		}
		filter.ExperienceLevel = c.Query("experience_level") // Experience filter
		if v := c.Query("budget_min"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				filter.BudgetMin = f // Budget lower bound
			}
		}
		if v := c.Query("budget_max"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				filter.BudgetMax = f // Budget upper bound
			}
		}
		unfiltered := filter == (service.JobFilter{}) // Only the plain listing is cached
		ctx := context.Background()                   // Context for Redis operations
		if unfiltered {
			var cached []service.JobListing
			if found, err := utils.GetCache(ctx, rdb, "jobs:all", &cached); err == nil && found {
				c.JSON(http.StatusOK, success(gin.H{"jobs": cached, "cached": true}))
				return
			}
		}
		listings, err := jobs.ListJobs(filter)
		if err != nil {
			abortWith(c, err, "Failed to fetch jobs")
			return
		}
		if unfiltered {
			_ = utils.SetCache(ctx, rdb, "jobs:all", listings, 60*time.Second) // Cache listing for 60 seconds
		}
		// Return the jobs
		c.JSON(http.StatusOK, success(gin.H{"jobs": listings}))
	}
}

// GetJobHandler returns one enriched job and counts the view
func GetJobHandler(jobs *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32) // Parse job id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid job ID"))
			return
		}
		// No detail caching: every read bumps the view counter
		listing, err := jobs.GetJob(uint(jobID))
		if err != nil {
			abortWith(c, err, "Failed to fetch job")
			return
		}
		// Return the job
		c.JSON(http.StatusOK, success(gin.H{"job": listing}))
	}
}

// DeleteJobRequest identifies the requesting owner
type DeleteJobRequest struct {
	ClientID uint `json:"client_id" binding:"required"` // Requesting owner
}

// DeleteJobHandler removes an owner's still-pending job
func DeleteJobHandler(jobs *service.JobService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 32) // Parse job id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid job ID"))
			return
		}
		var req DeleteJobRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Client ID is required"))
			return
		}
		if err := jobs.DeleteJob(uint(jobID), req.ClientID); err != nil {
			abortWith(c, err, "Failed to delete job")
			return
		}
		// Log successful deletion
		logrus.WithFields(logrus.Fields{
			"job_id":    jobID,        // Deleted job
			"client_id": req.ClientID, // Requesting owner
		}).Info("Job deleted")
		_ = utils.DeleteCache(context.Background(), rdb, "jobs:all") // Invalidate listing cache
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Job deleted successfully"}))
	}
}

// ListCategoriesHandler returns all job categories
func ListCategoriesHandler(jobs *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := jobs.ListCategories()
		if err != nil {
			abortWith(c, err, "Failed to fetch categories")
			return
		}
		// Return the categories
		c.JSON(http.StatusOK, success(gin.H{"categories": categories}))
	}
}

// SaveJobRequest represents a bookmark toggle
type SaveJobRequest struct {
	UserID uint `json:"user_id" binding:"required"` // Bookmarking user
	JobID  uint `json:"job_id" binding:"required"`  // Target job
}

// ToggleSaveJobHandler saves a job if it isn't bookmarked and unsaves it if it is
func ToggleSaveJobHandler(hiring *service.HiringService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveJobRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("User ID and Job ID are required"))
			return
		}
		saved, err := hiring.ToggleSaveJob(req.UserID, req.JobID)
		if err != nil {
			abortWith(c, err, "Failed to save job")
			return
		}
		// The message mirrors which direction the toggle went
		message := "Job removed from saved jobs"
		if saved {
			message = "Job saved successfully"
		}
		// Return success response with the direction indicator
		c.JSON(http.StatusOK, success(gin.H{"message": message, "saved": saved}))
	}
}

// SavedJobsHandler returns a user's bookmarked jobs
func SavedJobsHandler(jobs *service.JobService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		listings, err := jobs.SavedJobs(uint(userID))
		if err != nil {
			abortWith(c, err, "Failed to fetch saved jobs")
			return
		}
		// Return the saved jobs
		c.JSON(http.StatusOK, success(gin.H{"jobs": listings}))
	}
}
