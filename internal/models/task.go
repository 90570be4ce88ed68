package models

import "time"

// Task represents a unit of work on a project board
type Task struct {
	ID          string
	ProjectID   string
	Summary     string
	Description string

	// Classification fields resolve against the project's TaskConfig.
	// Broken references degrade to a placeholder label, they never error.
	Status     string
	Priority   string
	Estimation string
	Health     string

	// SectionID is nullable only transiently during creation; the service
	// layer fills in the project's first section before the insert.
	SectionID string
	SortOrder int

	DueDate     *time.Time
	AssigneeID  string
	Tags        []string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time

	// Denormalized display fields supplied by the enriched fetch.
	// Empty when the board fell back to the plain per-table fetch.
	AssigneeEmail    string
	AssigneeFullName string
	CommentCount     int
}

// Completed reports whether the task's status is the completed status
func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}

// TaskPatch is a partial update to a task.
// Fields with pointers are optional - nil means don't update.
type TaskPatch struct {
	Summary     *string
	Description *string
	Status      *string
	Priority    *string
	Estimation  *string
	Health      *string
	SectionID   *string
	SortOrder   *int
	DueDate     *time.Time
	AssigneeID  *string
	Tags        *[]string

	// CompletedAt is managed by the mutation coordinator as a function of
	// status transitions; ClearCompletedAt distinguishes "clear" from
	// "leave untouched".
	CompletedAt      *time.Time
	ClearCompletedAt bool

	// ClearDueDate distinguishes removing a due date from not touching it
	ClearDueDate bool
}

// IsEmpty reports whether the patch would change nothing
func (p TaskPatch) IsEmpty() bool {
	return p.Summary == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Estimation == nil && p.Health == nil &&
		p.SectionID == nil && p.SortOrder == nil && p.DueDate == nil &&
		p.AssigneeID == nil && p.Tags == nil && p.CompletedAt == nil &&
		!p.ClearCompletedAt && !p.ClearDueDate
}

// Apply copies the patch's set fields onto the task
func (p TaskPatch) Apply(t *Task) {
	if p.Summary != nil {
		t.Summary = *p.Summary
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Estimation != nil {
		t.Estimation = *p.Estimation
	}
	if p.Health != nil {
		t.Health = *p.Health
	}
	if p.SectionID != nil {
		t.SectionID = *p.SectionID
	}
	if p.SortOrder != nil {
		t.SortOrder = *p.SortOrder
	}
	if p.DueDate != nil {
		t.DueDate = p.DueDate
	}
	if p.ClearDueDate {
		t.DueDate = nil
	}
	if p.AssigneeID != nil {
		t.AssigneeID = *p.AssigneeID
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.CompletedAt != nil {
		t.CompletedAt = p.CompletedAt
	}
	if p.ClearCompletedAt {
		t.CompletedAt = nil
	}
}
