package config

import "errors"

// Configuration-related errors
var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptyTaxonomy    = errors.New("each taxonomy must have at least one entry")
	ErrLastEntry        = errors.New("cannot remove the last entry of a taxonomy")
	ErrEmptyEntryID     = errors.New("entry id cannot be empty")
)
