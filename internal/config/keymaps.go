package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask        string `yaml:"add_task"`
	EditTask       string `yaml:"edit_task"`
	DeleteTask     string `yaml:"delete_task"`
	MoveTaskLeft   string `yaml:"move_task_left"`
	MoveTaskRight  string `yaml:"move_task_right"`
	ToggleComplete string `yaml:"toggle_complete"`
	ViewTask       string `yaml:"view_task"`

	// Sections
	CreateSection string `yaml:"create_section"`
	RenameSection string `yaml:"rename_section"`
	DeleteSection string `yaml:"delete_section"`

	// Layouts
	NextLayout string `yaml:"next_layout"`
	PrevLayout string `yaml:"prev_layout"`

	// Navigation
	PrevGroup string `yaml:"prev_group"`
	NextGroup string `yaml:"next_group"`
	PrevTask  string `yaml:"prev_task"`
	NextTask  string `yaml:"next_task"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:        "a",
		EditTask:       "e",
		DeleteTask:     "d",
		MoveTaskLeft:   "H",
		MoveTaskRight:  "L",
		ToggleComplete: "x",
		ViewTask:       "enter",

		CreateSection: "C",
		RenameSection: "R",
		DeleteSection: "X",

		NextLayout: "tab",
		PrevLayout: "shift+tab",

		PrevGroup: "h",
		NextGroup: "l",
		PrevTask:  "k",
		NextTask:  "j",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.MoveTaskLeft == "" {
		k.MoveTaskLeft = defaults.MoveTaskLeft
	}
	if k.MoveTaskRight == "" {
		k.MoveTaskRight = defaults.MoveTaskRight
	}
	if k.ToggleComplete == "" {
		k.ToggleComplete = defaults.ToggleComplete
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.CreateSection == "" {
		k.CreateSection = defaults.CreateSection
	}
	if k.RenameSection == "" {
		k.RenameSection = defaults.RenameSection
	}
	if k.DeleteSection == "" {
		k.DeleteSection = defaults.DeleteSection
	}
	if k.NextLayout == "" {
		k.NextLayout = defaults.NextLayout
	}
	if k.PrevLayout == "" {
		k.PrevLayout = defaults.PrevLayout
	}
	if k.PrevGroup == "" {
		k.PrevGroup = defaults.PrevGroup
	}
	if k.NextGroup == "" {
		k.NextGroup = defaults.NextGroup
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
