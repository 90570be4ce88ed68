package events

import "github.com/phoenix-pm/phoenix/internal/models"

// Emitter fans task and UI notifications out to registered listeners.
// It is UI-thread-only state: no locking, registration happens before the
// event loop starts.
type Emitter struct {
	taskListeners []TaskListener
	uiListeners   []UIListener
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// OnTask registers a task lifecycle listener
func (e *Emitter) OnTask(l TaskListener) {
	e.taskListeners = append(e.taskListeners, l)
}

// OnUI registers a UI request listener
func (e *Emitter) OnUI(l UIListener) {
	e.uiListeners = append(e.uiListeners, l)
}

// TaskCreated notifies listeners that a task was created
func (e *Emitter) TaskCreated(task *models.Task) {
	for _, l := range e.taskListeners {
		if l.TaskCreated != nil {
			l.TaskCreated(task)
		}
	}
}

// TaskUpdated notifies listeners that a task changed. Drag-initiated moves
// deliberately do not call this; the drop handler owns that UI refresh.
func (e *Emitter) TaskUpdated(task *models.Task) {
	for _, l := range e.taskListeners {
		if l.TaskUpdated != nil {
			l.TaskUpdated(task)
		}
	}
}

// TaskDeleted notifies listeners that a task was removed
func (e *Emitter) TaskDeleted(taskID string) {
	for _, l := range e.taskListeners {
		if l.TaskDeleted != nil {
			l.TaskDeleted(taskID)
		}
	}
}

// OpenNewTaskModal asks the page host to open the new-task form
func (e *Emitter) OpenNewTaskModal(defaults NewTaskDefaults) {
	for _, l := range e.uiListeners {
		if l.OpenNewTaskModal != nil {
			l.OpenNewTaskModal(defaults)
		}
	}
}

// EditTask asks the page host to open the edit form for a task
func (e *Emitter) EditTask(task *models.Task) {
	for _, l := range e.uiListeners {
		if l.EditTask != nil {
			l.EditTask(task)
		}
	}
}

// OpenTaskConfig asks the page host to open the taxonomy editor
func (e *Emitter) OpenTaskConfig() {
	for _, l := range e.uiListeners {
		if l.OpenTaskConfig != nil {
			l.OpenTaskConfig()
		}
	}
}
