// Package tui implements the terminal board: groups of the active layout as
// columns, tasks as cards, with keyboard-driven mutations.
package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/phoenix-pm/phoenix/internal/board"
	appconfig "github.com/phoenix-pm/phoenix/internal/config"
	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/events"
	"github.com/phoenix-pm/phoenix/internal/models"
	"github.com/phoenix-pm/phoenix/internal/session"
	configsvc "github.com/phoenix-pm/phoenix/internal/services/config"
	sectionsvc "github.com/phoenix-pm/phoenix/internal/services/section"
	tasksvc "github.com/phoenix-pm/phoenix/internal/services/task"
)

// mode is the TUI interaction mode
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeConfirm
	modeDetail
	modeHelp
	modeAlert
)

// inputAction tags what the text input submits to
type inputAction int

const (
	inputNewTask inputAction = iota
	inputEditSummary
	inputNewSection
	inputRenameSection
)

// confirmAction tags what a y/n confirmation executes
type confirmAction int

const (
	confirmDeleteTask confirmAction = iota
	confirmDeleteSection
)

// Deps bundles everything the TUI needs from the composition root
type Deps struct {
	Repo     database.DataStore
	Tasks    tasksvc.Service
	Sections sectionsvc.Service
	Configs  configsvc.Service
	Emitter  *events.Emitter
	Session  session.Store
	Config   *appconfig.Config
	User     *models.User
}

// Model represents the application state for the TUI
type Model struct {
	deps Deps
	keys appconfig.KeyMappings

	// Board context
	projectID   string
	projectName string
	taskConfig  *models.TaskConfig
	sections    []*models.Section
	layouts     []board.Layout
	layout      board.Layout
	groups      []board.Group

	// Selection
	selGroup int
	selTask  int

	// Interaction state
	mode          mode
	input         textinput.Model
	inputFor      inputAction
	confirmFor    confirmAction
	confirmPrompt string
	detailText    string
	alertText     string

	// Targets for the pending input/confirm action
	pendingDefaults events.NewTaskDefaults
	editingTaskID   string
	targetSectionID string

	// loadError is the inline banner for data-loading failures; unlike
	// alerts it persists until a reload succeeds
	loadError string

	width  int
	height int

	styles Styles

	// eventCh carries emitter notifications into the update loop
	eventCh chan tea.Msg
}

// NewModel creates and initializes the TUI model, loading the active
// project's board
func NewModel(deps Deps) Model {
	ctx := context.Background()

	m := Model{
		deps:    deps,
		keys:    deps.Config.KeyMappings,
		styles:  NewStyles(deps.Config.Theme),
		layout:  board.LayoutSections,
		input:   textinput.New(),
		eventCh: make(chan tea.Msg, 16),
	}
	m.input.CharLimit = models.MaxSummaryLength

	m.registerListeners()

	sess, err := deps.Session.Load()
	if err != nil {
		slog.Warn("failed to load session", "error", err)
	}
	if sess.Layout != "" {
		m.layout = board.Layout(sess.Layout)
	}

	m.projectID, m.projectName = m.resolveProject(ctx, sess)
	if m.projectID == "" {
		m.loadError = "No projects found. Run `phoenix seed` to create sample data."
		return m
	}

	m.reload(ctx)
	return m
}

// resolveProject picks the session's project, falling back to the first
// project of the first workspace
func (m *Model) resolveProject(ctx context.Context, sess session.Session) (string, string) {
	if sess.ProjectID != "" {
		if p, err := m.deps.Repo.GetProject(ctx, sess.ProjectID); err == nil {
			return p.ID, p.Name
		}
	}

	workspaces, err := m.deps.Repo.GetAllWorkspaces(ctx)
	if err != nil || len(workspaces) == 0 {
		return "", ""
	}
	projects, err := m.deps.Repo.GetProjectsByWorkspace(ctx, workspaces[0].ID)
	if err != nil || len(projects) == 0 {
		return "", ""
	}

	sess.WorkspaceID = workspaces[0].ID
	sess.ProjectID = projects[0].ID
	if err := m.deps.Session.Save(sess); err != nil {
		slog.Warn("failed to save session", "error", err)
	}
	return projects[0].ID, projects[0].Name
}

// reload re-fetches sections, configuration and tasks. Load failures set
// the inline banner; the configuration load cannot fail (it falls back to
// defaults).
func (m *Model) reload(ctx context.Context) {
	m.taskConfig = m.deps.Configs.Load(ctx, m.projectID)

	sections, err := m.deps.Sections.ListByProject(ctx, m.projectID)
	if err != nil {
		slog.Error("failed to load sections", "error", err)
		m.loadError = "Failed to load sections."
		return
	}
	m.sections = sections

	if _, err := m.deps.Tasks.LoadBoard(ctx, m.projectID); err != nil {
		slog.Error("failed to load tasks", "error", err)
		m.loadError = "Failed to load tasks."
		return
	}

	m.loadError = ""
	m.layouts = board.AvailableLayouts(m.taskConfig)
	if !m.layoutAvailable(m.layout) {
		m.layout = board.LayoutSections
	}
	m.refreshGroups()
}

// refreshGroups recomputes the group list and clamps the selection
func (m *Model) refreshGroups() {
	m.groups = board.ComputeGroups(m.layout, m.sections, m.taskConfig)
	if m.selGroup >= len(m.groups) {
		m.selGroup = max(len(m.groups)-1, 0)
	}
	m.clampTaskSelection()
}

func (m *Model) clampTaskSelection() {
	tasks := m.currentTasks()
	if m.selTask >= len(tasks) {
		m.selTask = max(len(tasks)-1, 0)
	}
}

func (m *Model) layoutAvailable(l board.Layout) bool {
	for _, have := range m.layouts {
		if have == l {
			return true
		}
	}
	return false
}

// currentGroup returns the selected group, or nil when the board is empty
func (m *Model) currentGroup() *board.Group {
	if len(m.groups) == 0 {
		return nil
	}
	return &m.groups[m.selGroup]
}

// currentTasks returns the selected group's task list
func (m *Model) currentTasks() []*models.Task {
	g := m.currentGroup()
	if g == nil {
		return nil
	}
	return board.TasksInGroup(m.deps.Tasks.Store().All(), *g)
}

// currentTask returns the selected task, or nil
func (m *Model) currentTask() *models.Task {
	tasks := m.currentTasks()
	if len(tasks) == 0 || m.selTask >= len(tasks) {
		return nil
	}
	return tasks[m.selTask]
}

// Init starts listening for emitter notifications
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.eventCh)
}
