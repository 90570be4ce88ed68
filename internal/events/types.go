// Package events decouples the board components from the page-level hosts
// through a typed emitter instead of an ad-hoc event bus.
package events

import "github.com/phoenix-pm/phoenix/internal/models"

// NewTaskDefaults carries the prefilled field values for the new-task form.
// The board sets the field matching its active layout, plus the section the
// task should land in.
type NewTaskDefaults struct {
	SectionID  string
	Status     string
	Priority   string
	Estimation string
	Health     string
}

// TaskListener receives task lifecycle notifications.
// All fields are optional; nil callbacks are skipped.
type TaskListener struct {
	TaskCreated func(task *models.Task)
	TaskUpdated func(task *models.Task)
	TaskDeleted func(taskID string)
}

// UIListener receives requests to open page-level dialogs
type UIListener struct {
	OpenNewTaskModal func(defaults NewTaskDefaults)
	EditTask         func(task *models.Task)
	OpenTaskConfig   func()
}
