package models

import "time"

// Section represents a user-defined board column scoped to a project.
// Section names carry no uniqueness invariant; two sections of a project
// may share a name.
type Section struct {
	ID        string
	ProjectID string
	Name      string
	Color     string
	SortOrder int
	CreatedBy string
	CreatedAt time.Time
}
