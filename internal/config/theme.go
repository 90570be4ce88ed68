package config

// Theme defines the configurable UI colors. Values are hex colors or ANSI
// color numbers as lipgloss accepts them.
type Theme struct {
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	Title          string `yaml:"title"`
	Subtle         string `yaml:"subtle"`
	Accent         string `yaml:"accent"`
	Error          string `yaml:"error"`
}

// DefaultTheme returns the default color scheme
func DefaultTheme() Theme {
	return Theme{
		Border:         "240",
		SelectedBorder: "#FF2765",
		Title:          "#FFFDF5",
		Subtle:         "243",
		Accent:         "#FF2765",
		Error:          "#FF3B30",
	}
}

func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()
	if t.Border == "" {
		t.Border = defaults.Border
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = defaults.SelectedBorder
	}
	if t.Title == "" {
		t.Title = defaults.Title
	}
	if t.Subtle == "" {
		t.Subtle = defaults.Subtle
	}
	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.Error == "" {
		t.Error = defaults.Error
	}
}
