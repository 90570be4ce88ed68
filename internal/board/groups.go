package board

import (
	"sort"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// ComputeGroups produces the ordered group list for a layout. Sections pass
// through directly; taxonomy layouts map their entries to groups.
func ComputeGroups(layout Layout, sections []*models.Section, cfg *models.TaskConfig) []Group {
	switch layout {
	case LayoutStatuses:
		return entryGroups(cfg.Statuses, KindStatus)
	case LayoutPriorities:
		return entryGroups(cfg.Priorities, KindPriority)
	case LayoutEstimations:
		return entryGroups(cfg.Estimations, KindEstimation)
	case LayoutHealths:
		return entryGroups(cfg.Healths, KindHealth)
	default:
		groups := make([]Group, 0, len(sections))
		for _, s := range sections {
			color := s.Color
			if color == "" {
				color = models.DefaultSectionColor
			}
			groups = append(groups, Group{ID: s.ID, Name: s.Name, Color: color, Kind: KindSection})
		}
		return groups
	}
}

func entryGroups(entries []models.ConfigEntry, kind GroupKind) []Group {
	groups := make([]Group, 0, len(entries))
	for _, e := range entries {
		groups = append(groups, Group{ID: e.ID, Name: e.Name, Color: e.Color, Kind: kind})
	}
	return groups
}

// AvailableLayouts lists the layouts the selector offers. Layouts whose
// taxonomy is empty are omitted; sections are always offered.
func AvailableLayouts(cfg *models.TaskConfig) []Layout {
	layouts := []Layout{LayoutSections}
	if len(cfg.Statuses) > 0 {
		layouts = append(layouts, LayoutStatuses)
	}
	if len(cfg.Priorities) > 0 {
		layouts = append(layouts, LayoutPriorities)
	}
	if len(cfg.Estimations) > 0 {
		layouts = append(layouts, LayoutEstimations)
	}
	if len(cfg.Healths) > 0 {
		layouts = append(layouts, LayoutHealths)
	}
	return layouts
}

// TasksInGroup filters tasks whose classification field matches the group
// and sorts them ascending by sort_order. The sort is stable: ties keep the
// collection order. Tasks matching no group under the active layout appear
// nowhere; every task always has a concrete value for every classification
// field, so this only happens for ids removed from the taxonomy.
func TasksInGroup(tasks []*models.Task, group Group) []*models.Task {
	var matched []*models.Task
	for _, t := range tasks {
		if group.Kind.FieldValue(t) == group.ID {
			matched = append(matched, t)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SortOrder < matched[j].SortOrder
	})
	return matched
}

// MaxSortOrder returns the highest sort_order among the group's tasks,
// defaulting to 0 for an empty group. A dropped task lands at max+1.
func MaxSortOrder(tasks []*models.Task, group Group) int {
	maxOrder := 0
	for _, t := range TasksInGroup(tasks, group) {
		if t.SortOrder > maxOrder {
			maxOrder = t.SortOrder
		}
	}
	return maxOrder
}

// ResolveEntry looks a taxonomy id up in its set, degrading to the raw id
// with the gray fallback color when the reference is broken
func ResolveEntry(entries []models.ConfigEntry, id string) models.ConfigEntry {
	if e, ok := models.EntryByID(entries, id); ok {
		return e
	}
	return models.ConfigEntry{ID: id, Name: id, Color: models.FallbackColor}
}

// ResolveField resolves a task's classification field against the bundle
// for the given kind. Section groups have no taxonomy; callers resolve
// sections from the registry instead.
func ResolveField(cfg *models.TaskConfig, kind GroupKind, id string) models.ConfigEntry {
	switch kind {
	case KindStatus:
		return ResolveEntry(cfg.Statuses, id)
	case KindPriority:
		return ResolveEntry(cfg.Priorities, id)
	case KindEstimation:
		return ResolveEntry(cfg.Estimations, id)
	case KindHealth:
		return ResolveEntry(cfg.Healths, id)
	}
	return models.ConfigEntry{ID: id, Name: id, Color: models.FallbackColor}
}
