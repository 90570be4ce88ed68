package models

// ConfigEntry is a single selectable value of a taxonomy (status, priority,
// estimation or health) together with its display metadata
type ConfigEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

// TaskConfig is a project-scoped taxonomy bundle: the four independent
// ordered sets a board can group by. Each set must retain at least one entry.
type TaskConfig struct {
	Statuses    []ConfigEntry `json:"statuses"`
	Priorities  []ConfigEntry `json:"priorities"`
	Estimations []ConfigEntry `json:"estimations"`
	Healths     []ConfigEntry `json:"healths"`
}

// EntryByID finds a taxonomy entry by its id
func EntryByID(entries []ConfigEntry, id string) (ConfigEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return ConfigEntry{}, false
}

// DefaultTaskConfig returns the built-in taxonomy bundle used when a project
// has no stored configuration. Ids and colors are fixed.
func DefaultTaskConfig() *TaskConfig {
	return &TaskConfig{
		Statuses: []ConfigEntry{
			{ID: StatusTodo, Name: "To Do", Color: "#8E8E93", Order: 0},
			{ID: StatusInProgress, Name: "In Progress", Color: "#FF9500", Order: 1},
			{ID: StatusCompleted, Name: "Completed", Color: "#34C759", Order: 2},
		},
		Priorities: []ConfigEntry{
			{ID: "low", Name: "Low", Color: "#8E8E93", Order: 0},
			{ID: "medium", Name: "Medium", Color: "#FF9500", Order: 1},
			{ID: "high", Name: "High", Color: "#FF3B30", Order: 2},
		},
		Estimations: []ConfigEntry{
			{ID: "xs", Name: "XS (1-2h)", Color: "#34C759", Order: 0},
			{ID: "small", Name: "Small (3-5h)", Color: "#8E8E93", Order: 1},
			{ID: "medium", Name: "Medium (1d)", Color: "#FF9500", Order: 2},
			{ID: "large", Name: "Large (2-3d)", Color: "#FF3B30", Order: 3},
			{ID: "xl", Name: "XL (1w+)", Color: "#AF52DE", Order: 4},
		},
		Healths: []ConfigEntry{
			{ID: "excellent", Name: "Excellent", Color: "#34C759", Order: 0},
			{ID: "good", Name: "Good", Color: "#8E8E93", Order: 1},
			{ID: "at_risk", Name: "At Risk", Color: "#FF9500", Order: 2},
			{ID: "blocked", Name: "Blocked", Color: "#FF3B30", Order: 3},
		},
	}
}
