package models

import "time"

// Workspace is the top-level organizational unit; projects live in a
// workspace
type Workspace struct {
	ID        string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}

// Project is a container for sections and tasks
type Project struct {
	ID          string
	WorkspaceID string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// User is a project member. Email and FullName are the denormalized display
// fields the enriched fetches join in.
type User struct {
	ID       string
	Email    string
	FullName string
}
