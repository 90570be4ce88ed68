package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptySummary     = errors.New("summary cannot be empty")
	ErrSummaryTooLong   = errors.New("summary cannot exceed 255 characters")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")

	// ErrStaleTarget indicates a move targeting a group that no longer
	// exists under the active layout (e.g. deleted mid-drag)
	ErrStaleTarget = errors.New("target group no longer exists")
)
