package api

import (
	"errors"
	"net/http"

	"freelancehub/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// success wraps a payload in the success envelope.
func success(extra gin.H) gin.H {
	out := gin.H{"status": "success"} // Tagged success result
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// fail builds the error envelope.
func fail(message string) gin.H {
	return gin.H{"status": "error", "message": message} // Tagged error result
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateProposal),
		errors.Is(err, service.ErrInsufficientBalance),
		errors.Is(err, service.ErrJobUnavailable):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		// Partial failures and unclassified store errors
		return http.StatusInternalServerError
	}
}

// messageFor picks the user-visible message for a service error, falling back
// to the operation-specific text for unclassified store errors.
func messageFor(err error, fallback string) string {
	var pf *service.PartialFailureError
	switch {
	case errors.Is(err, service.ErrValidation):
		return "Invalid request"
	case errors.Is(err, service.ErrNotFound):
		return "Not found"
	case errors.Is(err, service.ErrDuplicateProposal):
		return "You have already submitted a proposal for this job"
	case errors.Is(err, service.ErrInsufficientBalance):
		return "Insufficient balance"
	case errors.Is(err, service.ErrJobUnavailable):
		return "Job is no longer open"
	case errors.As(err, &pf):
		// Distinct from total failure: some writes may have landed.
		return "Operation partially applied, manual reconciliation required"
	}
	return fallback
}

// abortWith writes the mapped error response.
func abortWith(c *gin.Context, err error, fallback string) {
	c.JSON(statusFor(err), fail(messageFor(err, fallback)))
}
