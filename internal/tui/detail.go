package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// openDetail builds the full task view and switches to detail mode. The
// description is markdown and rendered with glamour; on render failure the
// raw text is shown instead.
func (m *Model) openDetail(t *models.Task) {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(t.Summary))
	b.WriteString("\n\n")

	b.WriteString(m.detailMeta(t))
	b.WriteString("\n")

	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.renderMarkdown(t.Description))
	}

	if comments := m.renderComments(t.ID); comments != "" {
		b.WriteString("\n")
		b.WriteString(comments)
	}

	m.detailText = b.String()
	m.mode = modeDetail
}

// renderComments loads and formats the task's comment thread. Load failures
// degrade to an empty section; the rest of the detail view still shows.
func (m *Model) renderComments(taskID string) string {
	comments, err := m.deps.Repo.GetCommentsByTask(context.Background(), taskID)
	if err != nil {
		slog.Warn("failed to load comments", "task", taskID, "error", err)
		return ""
	}
	if len(comments) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Comments"))
	b.WriteString("\n")
	for _, c := range comments {
		author := c.AuthorEmail
		if author == "" {
			author = "unknown"
		}
		b.WriteString(m.styles.Subtle.Render(author + " · " + c.CreatedAt.Local().Format("Jan 2 15:04")))
		b.WriteString("\n")
		b.WriteString(c.Body)
		b.WriteString("\n")
	}
	return b.String()
}

// detailMeta renders the classification and bookkeeping lines
func (m *Model) detailMeta(t *models.Task) string {
	cfg := m.taskConfig
	rows := []struct {
		label string
		value string
	}{
		{"Status", coloredEntry(board.ResolveEntry(cfg.Statuses, t.Status))},
		{"Priority", coloredEntry(board.ResolveEntry(cfg.Priorities, t.Priority))},
		{"Estimation", coloredEntry(board.ResolveEntry(cfg.Estimations, t.Estimation))},
		{"Health", coloredEntry(board.ResolveEntry(cfg.Healths, t.Health))},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", r.label)))
		b.WriteString(r.value)
		b.WriteString("\n")
	}

	if t.DueDate != nil {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", "Due")))
		b.WriteString(t.DueDate.Format("Jan 2, 2006"))
		b.WriteString("\n")
	}
	if t.AssigneeFullName != "" || t.AssigneeEmail != "" {
		name := t.AssigneeFullName
		if name == "" {
			name = t.AssigneeEmail
		}
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", "Assignee")))
		b.WriteString(name)
		b.WriteString("\n")
	}
	if len(t.Tags) > 0 {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", "Tags")))
		b.WriteString(strings.Join(t.Tags, ", "))
		b.WriteString("\n")
	}
	if t.CompletedAt != nil {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", "Completed")))
		b.WriteString(t.CompletedAt.Local().Format("Jan 2, 2006 15:04"))
		b.WriteString("\n")
	}
	if t.CommentCount > 0 {
		b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("%-11s", "Comments")))
		b.WriteString(fmt.Sprintf("%d", t.CommentCount))
		b.WriteString("\n")
	}
	return b.String()
}

func coloredEntry(e models.ConfigEntry) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(e.Color)).
		Render(e.Name)
}

func (m *Model) renderMarkdown(text string) string {
	width := m.width - 12
	if width < 20 || width > 100 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("failed to create markdown renderer", "error", err)
		return text
	}
	out, err := renderer.Render(text)
	if err != nil {
		slog.Warn("failed to render markdown", "error", err)
		return text
	}
	return out
}
