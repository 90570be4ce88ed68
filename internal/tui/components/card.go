package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// CardWidth is the inner width of a task card
const CardWidth = 30

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(CardWidth).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#FF2765"))

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// RenderCard renders one task card: summary, classification chips, due
// date, capped tags and the comment count
func RenderCard(task *models.Task, cfg *models.TaskConfig, selected bool) string {
	summaryStyle := lipgloss.NewStyle().Bold(true)
	if task.Completed() {
		summaryStyle = summaryStyle.Strikethrough(true).Faint(true)
	}
	summary := summaryStyle.Render(truncate(task.Summary, CardWidth-2))

	priority := board.ResolveEntry(cfg.Priorities, task.Priority)
	status := board.ResolveEntry(cfg.Statuses, task.Status)
	meta := chip(priority) + " " + chip(status)

	var lines []string
	lines = append(lines, summary, meta)

	if task.DueDate != nil {
		lines = append(lines, subtleStyle.Render("due "+formatDue(*task.DueDate)))
	}
	if tagLine := renderTags(task.Tags); tagLine != "" {
		lines = append(lines, tagLine)
	}
	if footer := renderFooter(task); footer != "" {
		lines = append(lines, footer)
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// chip renders a colored taxonomy label
func chip(e models.ConfigEntry) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(e.Color)).
		Render("● " + e.Name)
}

// renderTags shows the first tags and collapses the remainder into a count
func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	shown := tags
	extra := ""
	if len(tags) > models.MaxVisibleTags {
		shown = tags[:models.MaxVisibleTags]
		extra = fmt.Sprintf(" +%d", len(tags)-models.MaxVisibleTags)
	}
	return subtleStyle.Render("#" + strings.Join(shown, " #") + extra)
}

// renderFooter shows assignee and comment count when present
func renderFooter(task *models.Task) string {
	var parts []string
	if task.AssigneeFullName != "" {
		parts = append(parts, task.AssigneeFullName)
	} else if task.AssigneeEmail != "" {
		parts = append(parts, task.AssigneeEmail)
	}
	if task.CommentCount > 0 {
		parts = append(parts, fmt.Sprintf("💬 %d", task.CommentCount))
	}
	if len(parts) == 0 {
		return ""
	}
	return subtleStyle.Render(strings.Join(parts, "  "))
}

func formatDue(d time.Time) string {
	now := time.Now()
	if d.Year() == now.Year() {
		return d.Format("Jan 2")
	}
	return d.Format("Jan 2 2006")
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
