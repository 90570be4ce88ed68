// Package board implements the grouping engine: it turns the active layout,
// the project's sections and the taxonomy bundle into the ordered group list
// a board or table view renders.
package board

import "github.com/phoenix-pm/phoenix/internal/models"

// Layout is the grouping dimension selected for the board/table view
type Layout string

const (
	LayoutSections    Layout = "sections"
	LayoutStatuses    Layout = "statuses"
	LayoutPriorities  Layout = "priorities"
	LayoutEstimations Layout = "estimations"
	LayoutHealths     Layout = "healths"
)

// Title returns the layout's display name
func (l Layout) Title() string {
	switch l {
	case LayoutSections:
		return "Sections"
	case LayoutStatuses:
		return "Status"
	case LayoutPriorities:
		return "Priority"
	case LayoutEstimations:
		return "Estimation"
	case LayoutHealths:
		return "Health"
	}
	return string(l)
}

// GroupKind tags which classification field a group matches against.
// An explicit tagged union, dispatched through switches; never derived by
// slicing layout names.
type GroupKind int

const (
	KindSection GroupKind = iota
	KindStatus
	KindPriority
	KindEstimation
	KindHealth
)

// Kind returns the group kind a layout produces
func (l Layout) Kind() GroupKind {
	switch l {
	case LayoutStatuses:
		return KindStatus
	case LayoutPriorities:
		return KindPriority
	case LayoutEstimations:
		return KindEstimation
	case LayoutHealths:
		return KindHealth
	default:
		return KindSection
	}
}

// Group is one column/table-section instance produced for the current layout
type Group struct {
	ID    string
	Name  string
	Color string
	Kind  GroupKind
}

// FieldValue returns the task's classification value matching the group kind
func (k GroupKind) FieldValue(t *models.Task) string {
	switch k {
	case KindStatus:
		return t.Status
	case KindPriority:
		return t.Priority
	case KindEstimation:
		return t.Estimation
	case KindHealth:
		return t.Health
	default:
		return t.SectionID
	}
}
