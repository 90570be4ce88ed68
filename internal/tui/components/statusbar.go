package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarProps carries the footer's content
type StatusBarProps struct {
	Width    int
	Project  string
	Layout   string
	Hints    []string
	ShowHelp string
}

// RenderStatusBar renders the footer: project, active layout and key hints
func RenderStatusBar(p StatusBarProps) string {
	left := lipgloss.NewStyle().Bold(true).Render(p.Project) +
		subtleStyle.Render("  view: "+p.Layout)

	hints := p.Hints
	if p.ShowHelp != "" {
		hints = append(hints, p.ShowHelp+" help")
	}
	right := subtleStyle.Render(strings.Join(hints, "  "))

	gap := p.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
