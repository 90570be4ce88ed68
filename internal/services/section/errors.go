package section

import "errors"

// Section-related errors
var (
	// Validation errors
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrNameTooLong      = errors.New("name cannot exceed 255 characters")
	ErrInvalidSectionID = errors.New("invalid section ID")
	ErrInvalidProjectID = errors.New("invalid project ID")

	// Business logic errors
	ErrLastSection = errors.New("cannot delete the only section of a project")
)
