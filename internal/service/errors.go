package service

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to the API layer. Handlers match with errors.Is/As;
// anything else is an unclassified store error.
var (
	ErrValidation          = errors.New("invalid or missing required field")
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateProposal   = errors.New("proposal already submitted for this job")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrJobUnavailable      = errors.New("job is not open")
)

// PartialFailureError reports a multi-step operation whose statements all
// succeeded but whose commit outcome the store could not confirm. The affected
// rows may or may not have been written; callers must treat the records as
// requiring manual reconciliation instead of retrying blindly.
type PartialFailureError struct {
	Op  string // operation name, e.g. "accept proposal"
	Err error  // underlying store error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: all steps applied but commit unconfirmed: %v", e.Op, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
