package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// ColumnProps carries everything needed to render one board column
type ColumnProps struct {
	Group       board.Group
	Tasks       []*models.Task
	Config      *models.TaskConfig
	Selected    bool
	SelectedIdx int
	Height      int
}

// RenderColumn renders a complete column: a colored header with the group
// name and task count, then the task cards
func RenderColumn(p ColumnProps) string {
	dot := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Group.Color)).
		Render("●")
	header := fmt.Sprintf("%s %s (%d)", dot, p.Group.Name, len(p.Tasks))
	if p.Selected {
		header = lipgloss.NewStyle().Bold(true).Render(header)
	}

	var body []string
	body = append(body, header)

	if len(p.Tasks) == 0 {
		body = append(body, subtleStyle.Italic(true).Render("No tasks"))
	} else {
		for i, task := range p.Tasks {
			body = append(body, RenderCard(task, p.Config, p.Selected && i == p.SelectedIdx))
		}
	}

	column := strings.Join(body, "\n")
	return lipgloss.NewStyle().
		Width(CardWidth + 4).
		MaxHeight(p.Height).
		Render(column)
}
