package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/tui/components"
)

// View renders the board and any active overlay
func (m Model) View() string {
	switch m.mode {
	case modeInput:
		return m.overlay(m.viewInput())
	case modeConfirm:
		return m.overlay(m.viewConfirm())
	case modeDetail:
		return m.overlay(m.viewDetail())
	case modeHelp:
		return m.overlay(m.viewHelp())
	case modeAlert:
		return m.overlay(m.viewAlert())
	}
	return m.viewBoard()
}

func (m Model) viewBoard() string {
	var b strings.Builder

	title := m.styles.Title.Render("Phoenix") + "  " +
		m.styles.Subtle.Render(m.projectName)
	b.WriteString(title)
	b.WriteString("\n")

	if m.loadError != "" {
		b.WriteString(m.styles.Banner.Render(m.loadError))
		b.WriteString("\n")
	}

	b.WriteString(m.viewColumns())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	return b.String()
}

func (m Model) viewColumns() string {
	if len(m.groups) == 0 {
		return m.styles.Subtle.Render("Nothing to show.")
	}

	all := m.deps.Tasks.Store().All()
	columnHeight := m.height - 4
	if columnHeight < 8 {
		columnHeight = 8
	}

	columns := make([]string, 0, len(m.groups))
	for i, g := range m.groups {
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			Group:       g,
			Tasks:       board.TasksInGroup(all, g),
			Config:      m.taskConfig,
			Selected:    i == m.selGroup,
			SelectedIdx: m.selTask,
			Height:      columnHeight,
		}))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if m.width > 0 {
		row = lipgloss.NewStyle().MaxWidth(m.width).Render(row)
	}
	return row
}

func (m Model) viewStatusBar() string {
	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.width,
		Project: m.projectName,
		Layout:  m.layout.Title(),
		Hints: []string{
			m.keys.AddTask + " add",
			m.keys.MoveTaskLeft + "/" + m.keys.MoveTaskRight + " move",
			m.keys.NextLayout + " view",
		},
		ShowHelp: m.keys.ShowHelp,
	})
}

func (m Model) viewInput() string {
	var title string
	switch m.inputFor {
	case inputNewTask:
		title = "New task"
	case inputEditSummary:
		title = "Edit task"
	case inputNewSection:
		title = "New section"
	case inputRenameSection:
		title = "Rename section"
	}
	content := m.styles.Title.Render(title) + "\n\n" +
		m.input.View() + "\n\n" +
		m.styles.Subtle.Render("enter save · esc cancel")
	return m.styles.InputBox.Render(content)
}

func (m Model) viewConfirm() string {
	return m.styles.AlertBox.Render(m.confirmPrompt)
}

func (m Model) viewDetail() string {
	content := m.detailText + "\n" +
		m.styles.Subtle.Render("esc close")
	return m.styles.HelpBox.Render(content)
}

func (m Model) viewAlert() string {
	content := m.alertText + "\n\n" +
		m.styles.Subtle.Render("press any key")
	return m.styles.AlertBox.Render(content)
}

func (m Model) viewHelp() string {
	k := m.keys
	rows := [][2]string{
		{"Tasks", ""},
		{k.AddTask, "add task"},
		{k.EditTask, "edit summary"},
		{k.ViewTask, "view details"},
		{k.ToggleComplete, "toggle complete"},
		{k.DeleteTask, "delete task"},
		{k.MoveTaskLeft + " / " + k.MoveTaskRight, "move between groups"},
		{"", ""},
		{"Sections", ""},
		{k.CreateSection, "create section"},
		{k.RenameSection, "rename section"},
		{k.DeleteSection, "delete section"},
		{"", ""},
		{"Board", ""},
		{k.NextLayout + " / " + k.PrevLayout, "switch view"},
		{k.PrevGroup + " / " + k.NextGroup, "select group"},
		{k.PrevTask + " / " + k.NextTask, "select task"},
		{k.Reload, "reload"},
		{k.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keybindings"))
	b.WriteString("\n\n")
	for _, r := range rows {
		if r[1] == "" {
			if r[0] != "" {
				b.WriteString(m.styles.Title.Render(r[0]))
			}
			b.WriteString("\n")
			continue
		}
		b.WriteString(m.styles.Subtle.Render(padRight(r[0], 14)))
		b.WriteString(r[1])
		b.WriteString("\n")
	}
	return m.styles.HelpBox.Render(b.String())
}

// overlay centers a box over the board
func (m Model) overlay(box string) string {
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
