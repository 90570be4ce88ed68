package models

// ============================================================================
// STATUS CONSTANTS
// ============================================================================

// Well-known status ids from the default taxonomy. Projects may rename or
// replace every status except that the completed id keeps its special
// handling in the mutation coordinator.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ============================================================================
// CREATION DEFAULTS
// ============================================================================

// Defaults applied when a new task omits a classification field
const (
	DefaultPriority   = "medium"
	DefaultEstimation = "medium"
	DefaultHealth     = "good"
)

// ============================================================================
// DISPLAY CONSTANTS
// ============================================================================

// FallbackColor is used for taxonomy ids that no longer resolve against the
// active configuration
const FallbackColor = "#8E8E93"

// DefaultSectionColor is used for sections created without a color
const DefaultSectionColor = "#007AFF"

// DoneSectionName is the reserved section name (matched case-insensitively)
// that forces a dropped task to completed regardless of the active layout
const DoneSectionName = "done"

// MaxSummaryLength caps task summaries and section names
const MaxSummaryLength = 255

// MaxVisibleTags is how many tags a card shows before collapsing the
// remainder into a count
const MaxVisibleTags = 2
