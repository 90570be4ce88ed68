package tui

import (
	"github.com/charmbracelet/lipgloss"

	appconfig "github.com/phoenix-pm/phoenix/internal/config"
)

// Styles holds the lipgloss styles derived from the user's theme
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Banner   lipgloss.Style
	AlertBox lipgloss.Style
	InputBox lipgloss.Style
	HelpBox  lipgloss.Style
	Status   lipgloss.Style

	GroupBorder    lipgloss.Style
	SelectedBorder lipgloss.Style

	Accent lipgloss.Color
	Error  lipgloss.Color
}

// NewStyles builds the style set from the theme
func NewStyles(theme appconfig.Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Error)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Error)).
			Padding(0, 1),
		AlertBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(theme.Error)).
			Padding(1, 2),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Accent)).
			Padding(0, 1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(1, 2),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)),
		GroupBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(0, 1),
		SelectedBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Padding(0, 1),
		Accent: lipgloss.Color(theme.Accent),
		Error:  lipgloss.Color(theme.Error),
	}
}
