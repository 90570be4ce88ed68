package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/phoenix-pm/phoenix/internal/events"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// taskChangedMsg arrives when a task lifecycle notification fires. Drag
// moves never produce one; the move handler refreshes the view itself,
// which is exactly why the coordinator suppresses the callback for drags.
type taskChangedMsg struct{}

// openNewTaskMsg asks the TUI to open the new-task input with defaults
type openNewTaskMsg struct {
	defaults events.NewTaskDefaults
}

// editTaskMsg asks the TUI to open the edit input for a task
type editTaskMsg struct {
	task *models.Task
}

// registerListeners bridges emitter callbacks into the update loop via the
// model's event channel. Sends are non-blocking: a full channel drops the
// notification rather than deadlocking the UI thread.
func (m *Model) registerListeners() {
	send := func(msg tea.Msg) {
		select {
		case m.eventCh <- msg:
		default:
		}
	}

	m.deps.Emitter.OnTask(events.TaskListener{
		TaskCreated: func(*models.Task) { send(taskChangedMsg{}) },
		TaskUpdated: func(*models.Task) { send(taskChangedMsg{}) },
		TaskDeleted: func(string) { send(taskChangedMsg{}) },
	})
	m.deps.Emitter.OnUI(events.UIListener{
		OpenNewTaskModal: func(d events.NewTaskDefaults) { send(openNewTaskMsg{defaults: d}) },
		EditTask:         func(t *models.Task) { send(editTaskMsg{task: t}) },
	})
}

// waitForEvent blocks on the event channel and delivers the next emitter
// notification as a tea.Msg
func waitForEvent(ch chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}
