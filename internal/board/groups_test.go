package board

import (
	"testing"

	"github.com/phoenix-pm/phoenix/internal/models"
)

func testSections() []*models.Section {
	return []*models.Section{
		{ID: "sec-a", Name: "Backlog", Color: "#8E8E93", SortOrder: 0},
		{ID: "sec-b", Name: "Doing", Color: "", SortOrder: 1},
	}
}

// ============================================================================
// ComputeGroups
// ============================================================================

func TestComputeGroupsSections(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	groups := ComputeGroups(LayoutSections, testSections(), cfg)

	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0].ID != "sec-a" || groups[1].ID != "sec-b" {
		t.Errorf("Expected section order preserved, got %q, %q", groups[0].ID, groups[1].ID)
	}
	if groups[0].Kind != KindSection {
		t.Errorf("Expected KindSection, got %v", groups[0].Kind)
	}
	if groups[1].Color != models.DefaultSectionColor {
		t.Errorf("Expected colorless section to get default color, got %q", groups[1].Color)
	}
}

func TestComputeGroupsTaxonomies(t *testing.T) {
	cfg := models.DefaultTaskConfig()

	cases := []struct {
		layout Layout
		kind   GroupKind
		count  int
	}{
		{LayoutStatuses, KindStatus, 3},
		{LayoutPriorities, KindPriority, 3},
		{LayoutEstimations, KindEstimation, 5},
		{LayoutHealths, KindHealth, 4},
	}

	for _, tc := range cases {
		groups := ComputeGroups(tc.layout, nil, cfg)
		if len(groups) != tc.count {
			t.Errorf("%s: expected %d groups, got %d", tc.layout, tc.count, len(groups))
		}
		for _, g := range groups {
			if g.Kind != tc.kind {
				t.Errorf("%s: expected kind %v, got %v", tc.layout, tc.kind, g.Kind)
			}
		}
	}
}

func TestComputeGroupsEntryOrder(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	groups := ComputeGroups(LayoutPriorities, nil, cfg)

	want := []string{"low", "medium", "high"}
	for i, id := range want {
		if groups[i].ID != id {
			t.Errorf("Expected group %d to be %q, got %q", i, id, groups[i].ID)
		}
	}
}

// ============================================================================
// AvailableLayouts
// ============================================================================

func TestAvailableLayoutsFullBundle(t *testing.T) {
	layouts := AvailableLayouts(models.DefaultTaskConfig())
	if len(layouts) != 5 {
		t.Fatalf("Expected 5 layouts, got %d", len(layouts))
	}
	if layouts[0] != LayoutSections {
		t.Errorf("Expected sections first, got %q", layouts[0])
	}
}

func TestAvailableLayoutsOmitsEmptyTaxonomies(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	cfg.Healths = nil
	cfg.Estimations = nil

	layouts := AvailableLayouts(cfg)
	if len(layouts) != 3 {
		t.Fatalf("Expected 3 layouts, got %d: %v", len(layouts), layouts)
	}
	for _, l := range layouts {
		if l == LayoutHealths || l == LayoutEstimations {
			t.Errorf("Expected empty taxonomy layout %q to be omitted", l)
		}
	}
}

// ============================================================================
// TasksInGroup
// ============================================================================

func TestTasksInGroupPartition(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", SectionID: "sec-a", SortOrder: 2},
		{ID: "t2", SectionID: "sec-b", SortOrder: 0},
		{ID: "t3", SectionID: "sec-a", SortOrder: 1},
		{ID: "t4", SectionID: "sec-gone", SortOrder: 0},
	}
	groups := ComputeGroups(LayoutSections, testSections(), models.DefaultTaskConfig())

	seen := make(map[string]int)
	total := 0
	for _, g := range groups {
		for _, task := range TasksInGroup(tasks, g) {
			seen[task.ID]++
			total++
		}
	}

	// Every matching task appears exactly once; the orphan appears nowhere
	if total != 3 {
		t.Errorf("Expected 3 grouped tasks, got %d", total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Expected task %s to appear once, got %d", id, n)
		}
	}
	if seen["t4"] != 0 {
		t.Error("Expected task with removed section to appear in no group")
	}
}

func TestTasksInGroupSortsBySortOrder(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", Status: "todo", SortOrder: 5},
		{ID: "t2", Status: "todo", SortOrder: 1},
		{ID: "t3", Status: "todo", SortOrder: 3},
	}
	got := TasksInGroup(tasks, Group{ID: "todo", Kind: KindStatus})

	want := []string{"t2", "t3", "t1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("Expected position %d to be %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestTasksInGroupStableOnTies(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", Priority: "high", SortOrder: 0},
		{ID: "t2", Priority: "high", SortOrder: 0},
		{ID: "t3", Priority: "high", SortOrder: 0},
	}
	got := TasksInGroup(tasks, Group{ID: "high", Kind: KindPriority})

	for i, id := range []string{"t1", "t2", "t3"} {
		if got[i].ID != id {
			t.Errorf("Expected tie order preserved at %d: want %s, got %s", i, id, got[i].ID)
		}
	}
}

// ============================================================================
// MaxSortOrder
// ============================================================================

func TestMaxSortOrder(t *testing.T) {
	tasks := []*models.Task{
		{ID: "t1", SectionID: "sec-a", SortOrder: 0},
		{ID: "t2", SectionID: "sec-a", SortOrder: 7},
		{ID: "t3", SectionID: "sec-b", SortOrder: 99},
	}
	group := Group{ID: "sec-a", Kind: KindSection}

	if got := MaxSortOrder(tasks, group); got != 7 {
		t.Errorf("Expected max sort order 7, got %d", got)
	}
}

func TestMaxSortOrderEmptyGroup(t *testing.T) {
	if got := MaxSortOrder(nil, Group{ID: "sec-a", Kind: KindSection}); got != 0 {
		t.Errorf("Expected 0 for empty group, got %d", got)
	}
}

// ============================================================================
// ResolveEntry / ResolveField
// ============================================================================

func TestResolveEntryKnownID(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	e := ResolveEntry(cfg.Priorities, "high")
	if e.Name != "High" || e.Color != "#FF3B30" {
		t.Errorf("Expected High/#FF3B30, got %s/%s", e.Name, e.Color)
	}
}

func TestResolveEntryBrokenReference(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	e := ResolveEntry(cfg.Statuses, "archived")
	if e.Name != "archived" {
		t.Errorf("Expected raw id as label, got %q", e.Name)
	}
	if e.Color != models.FallbackColor {
		t.Errorf("Expected fallback color, got %q", e.Color)
	}
}

func TestResolveFieldDispatch(t *testing.T) {
	cfg := models.DefaultTaskConfig()
	if e := ResolveField(cfg, KindHealth, "blocked"); e.Name != "Blocked" {
		t.Errorf("Expected Blocked, got %q", e.Name)
	}
	if e := ResolveField(cfg, KindEstimation, "xl"); e.Color != "#AF52DE" {
		t.Errorf("Expected #AF52DE for xl, got %q", e.Color)
	}
}

// ============================================================================
// Layout helpers
// ============================================================================

func TestLayoutKind(t *testing.T) {
	cases := map[Layout]GroupKind{
		LayoutSections:    KindSection,
		LayoutStatuses:    KindStatus,
		LayoutPriorities:  KindPriority,
		LayoutEstimations: KindEstimation,
		LayoutHealths:     KindHealth,
	}
	for layout, kind := range cases {
		if layout.Kind() != kind {
			t.Errorf("Expected %q to produce kind %v, got %v", layout, kind, layout.Kind())
		}
	}
}

func TestGroupKindFieldValue(t *testing.T) {
	task := &models.Task{
		SectionID:  "sec-a",
		Status:     "todo",
		Priority:   "high",
		Estimation: "xs",
		Health:     "good",
	}
	cases := map[GroupKind]string{
		KindSection:    "sec-a",
		KindStatus:     "todo",
		KindPriority:   "high",
		KindEstimation: "xs",
		KindHealth:     "good",
	}
	for kind, want := range cases {
		if got := kind.FieldValue(task); got != want {
			t.Errorf("Kind %v: expected %q, got %q", kind, want, got)
		}
	}
}
