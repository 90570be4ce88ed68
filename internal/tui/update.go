package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/events"
	"github.com/phoenix-pm/phoenix/internal/models"
	sectionsvc "github.com/phoenix-pm/phoenix/internal/services/section"
	tasksvc "github.com/phoenix-pm/phoenix/internal/services/task"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case taskChangedMsg:
		// A confirmed mutation was applied to the store; recompute the
		// visible groups. No re-fetch: the local patch is authoritative.
		m.refreshGroups()
		return m, waitForEvent(m.eventCh)

	case openNewTaskMsg:
		m.startNewTask(msg.defaults)
		return m, waitForEvent(m.eventCh)

	case editTaskMsg:
		m.startEditTask(msg.task)
		return m, waitForEvent(m.eventCh)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeInput:
		return m.updateInput(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeDetail, modeHelp:
		// Any dismissal key returns to the board
		switch msg.String() {
		case "esc", "q", m.keys.Quit:
			m.mode = modeNormal
		}
		return m, nil
	case modeAlert:
		// Blocking alert: any key dismisses
		m.mode = modeNormal
		m.alertText = ""
		return m, nil
	}
	return m.updateNormal(msg)
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "ctrl+c", m.keys.Quit:
		return m, tea.Quit

	case m.keys.ShowHelp:
		m.mode = modeHelp

	case m.keys.Reload:
		m.reload(ctx)

	case m.keys.NextLayout:
		m.cycleLayout(1)
	case m.keys.PrevLayout:
		m.cycleLayout(-1)

	case m.keys.PrevGroup:
		if m.selGroup > 0 {
			m.selGroup--
			m.clampTaskSelection()
		}
	case m.keys.NextGroup:
		if m.selGroup < len(m.groups)-1 {
			m.selGroup++
			m.clampTaskSelection()
		}
	case m.keys.PrevTask:
		if m.selTask > 0 {
			m.selTask--
		}
	case m.keys.NextTask:
		if m.selTask < len(m.currentTasks())-1 {
			m.selTask++
		}

	case m.keys.AddTask:
		m.requestNewTask()

	case m.keys.EditTask:
		if t := m.currentTask(); t != nil {
			m.deps.Emitter.EditTask(t)
		}

	case m.keys.ViewTask:
		if t := m.currentTask(); t != nil {
			m.openDetail(t)
		}

	case m.keys.ToggleComplete:
		if t := m.currentTask(); t != nil {
			if _, err := m.deps.Tasks.QuickToggleComplete(ctx, t.ID); err != nil {
				m.showAlert("Failed to update task")
			}
		}

	case m.keys.DeleteTask:
		if t := m.currentTask(); t != nil {
			m.mode = modeConfirm
			m.confirmFor = confirmDeleteTask
			m.targetSectionID = ""
			m.editingTaskID = t.ID
			m.confirmPrompt = "Delete task \"" + t.Summary + "\"? (y/n)"
		}

	case m.keys.MoveTaskLeft:
		m.moveSelected(ctx, -1)
	case m.keys.MoveTaskRight:
		m.moveSelected(ctx, 1)

	case m.keys.CreateSection:
		m.mode = modeInput
		m.inputFor = inputNewSection
		m.input.Placeholder = "Section name"
		m.input.SetValue("")
		m.input.Focus()

	case m.keys.RenameSection:
		if g := m.currentGroup(); g != nil && g.Kind == board.KindSection {
			m.mode = modeInput
			m.inputFor = inputRenameSection
			m.targetSectionID = g.ID
			m.input.Placeholder = "Section name"
			m.input.SetValue(g.Name)
			m.input.Focus()
		}

	case m.keys.DeleteSection:
		if g := m.currentGroup(); g != nil && g.Kind == board.KindSection {
			m.mode = modeConfirm
			m.confirmFor = confirmDeleteSection
			m.targetSectionID = g.ID
			m.confirmPrompt = "Delete section \"" + g.Name + "\"? Its tasks move to the first section. (y/n)"
		}
	}

	return m, nil
}

// requestNewTask fires the open-new-task request with defaults keyed by the
// active layout: the selected group prefills its own classification field,
// and non-section layouts fall back to the first section.
func (m *Model) requestNewTask() {
	defaults := events.NewTaskDefaults{}
	if g := m.currentGroup(); g != nil {
		switch g.Kind {
		case board.KindSection:
			defaults.SectionID = g.ID
		case board.KindStatus:
			defaults.Status = g.ID
		case board.KindPriority:
			defaults.Priority = g.ID
		case board.KindEstimation:
			defaults.Estimation = g.ID
		case board.KindHealth:
			defaults.Health = g.ID
		}
	}
	if defaults.SectionID == "" && len(m.sections) > 0 {
		defaults.SectionID = m.sections[0].ID
	}
	m.deps.Emitter.OpenNewTaskModal(defaults)
}

func (m *Model) startNewTask(defaults events.NewTaskDefaults) {
	m.mode = modeInput
	m.inputFor = inputNewTask
	m.pendingDefaults = defaults
	m.input.Placeholder = "Task summary"
	m.input.SetValue("")
	m.input.Focus()
}

func (m *Model) startEditTask(task *models.Task) {
	m.mode = modeInput
	m.inputFor = inputEditSummary
	m.editingTaskID = task.ID
	m.input.Placeholder = "Task summary"
	m.input.SetValue(task.Summary)
	m.input.Focus()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		m.mode = modeNormal
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		m.submitInput(value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submitInput(value string) {
	ctx := context.Background()

	switch m.inputFor {
	case inputNewTask:
		_, err := m.deps.Tasks.Create(ctx, tasksvc.CreateTaskRequest{
			ProjectID:  m.projectID,
			Summary:    value,
			SectionID:  m.pendingDefaults.SectionID,
			Status:     m.pendingDefaults.Status,
			Priority:   m.pendingDefaults.Priority,
			Estimation: m.pendingDefaults.Estimation,
			Health:     m.pendingDefaults.Health,
			CreatedBy:  m.deps.User.ID,
		})
		if err != nil {
			m.showAlert("Failed to create task")
		}

	case inputEditSummary:
		summary := value
		if _, err := m.deps.Tasks.Update(ctx, m.editingTaskID, models.TaskPatch{Summary: &summary}); err != nil {
			m.showAlert("Failed to update task")
		}

	case inputNewSection:
		_, err := m.deps.Sections.Create(ctx, sectionsvc.CreateSectionRequest{
			ProjectID: m.projectID,
			Name:      value,
			CreatedBy: m.deps.User.ID,
		})
		if err != nil {
			m.showAlert("Failed to create section")
		} else {
			m.reloadSections(ctx)
		}

	case inputRenameSection:
		if err := m.deps.Sections.Update(ctx, m.targetSectionID, value, m.sectionColor(m.targetSectionID)); err != nil {
			m.showAlert("Failed to update section")
		} else {
			m.reloadSections(ctx)
		}
	}
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch msg.String() {
	case "y", "Y":
		m.mode = modeNormal
		switch m.confirmFor {
		case confirmDeleteTask:
			if err := m.deps.Tasks.Delete(ctx, m.editingTaskID); err != nil {
				m.showAlert("Failed to delete task")
			}
		case confirmDeleteSection:
			if err := m.deps.Sections.Delete(ctx, m.targetSectionID); err != nil {
				if err == sectionsvc.ErrLastSection {
					m.showAlert("You must have at least one section")
				} else {
					m.showAlert("Failed to delete section")
				}
			} else {
				// Section deletes restructure task ownership; reconcile
				// with a full reload instead of patching.
				m.reload(ctx)
			}
		}
	case "n", "N", "esc":
		m.mode = modeNormal
	}
	return m, nil
}

// moveSelected drops the selected task into the neighboring group
func (m *Model) moveSelected(ctx context.Context, direction int) {
	t := m.currentTask()
	if t == nil {
		return
	}
	targetIdx := m.selGroup + direction
	if targetIdx < 0 || targetIdx >= len(m.groups) {
		return
	}

	target := m.groups[targetIdx]
	if err := m.deps.Tasks.Move(ctx, t.ID, target); err != nil {
		if err == tasksvc.ErrStaleTarget {
			m.showAlert("That group no longer exists")
			m.reload(ctx)
		} else {
			m.showAlert("Failed to move task")
		}
		return
	}

	// The coordinator suppressed the TaskUpdated notification for this
	// drag-style move; this handler owns the single refresh.
	m.refreshGroups()
	m.selGroup = targetIdx
	m.selTask = len(board.TasksInGroup(m.deps.Tasks.Store().All(), target)) - 1
}

func (m *Model) cycleLayout(direction int) {
	if len(m.layouts) == 0 {
		return
	}
	idx := 0
	for i, l := range m.layouts {
		if l == m.layout {
			idx = i
			break
		}
	}
	idx = (idx + direction + len(m.layouts)) % len(m.layouts)
	m.layout = m.layouts[idx]
	m.selGroup = 0
	m.selTask = 0
	m.refreshGroups()
	m.persistLayout()
}

func (m *Model) persistLayout() {
	sess, err := m.deps.Session.Load()
	if err != nil {
		return
	}
	sess.Layout = string(m.layout)
	_ = m.deps.Session.Save(sess)
}

func (m *Model) reloadSections(ctx context.Context) {
	sections, err := m.deps.Sections.ListByProject(ctx, m.projectID)
	if err != nil {
		m.loadError = "Failed to load sections."
		return
	}
	m.sections = sections
	m.refreshGroups()
}

func (m *Model) sectionColor(id string) string {
	for _, s := range m.sections {
		if s.ID == id {
			return s.Color
		}
	}
	return models.DefaultSectionColor
}

func (m *Model) showAlert(text string) {
	m.mode = modeAlert
	m.alertText = text
}
