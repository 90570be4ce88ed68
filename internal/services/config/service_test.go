package config

import (
	"context"
	"testing"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
	"github.com/phoenix-pm/phoenix/internal/testutil"
)

func setupService(t *testing.T) (Service, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	projectID := testutil.CreateTestProject(t, db)
	return NewService(database.NewRepository(db)), projectID
}

// ============================================================================
// Load
// ============================================================================

func TestLoadReturnsDefaultsWhenUnconfigured(t *testing.T) {
	svc, projectID := setupService(t)

	cfg := svc.Load(context.Background(), projectID)
	if cfg == nil {
		t.Fatal("Expected a config, got nil")
	}

	if len(cfg.Statuses) != 3 {
		t.Errorf("Expected 3 default statuses, got %d", len(cfg.Statuses))
	}
	if len(cfg.Priorities) != 3 {
		t.Errorf("Expected 3 default priorities, got %d", len(cfg.Priorities))
	}
	if len(cfg.Estimations) != 5 {
		t.Errorf("Expected 5 default estimations, got %d", len(cfg.Estimations))
	}
	if len(cfg.Healths) != 4 {
		t.Errorf("Expected 4 default healths, got %d", len(cfg.Healths))
	}

	status, ok := models.EntryByID(cfg.Statuses, models.StatusInProgress)
	if !ok {
		t.Fatal("Expected in_progress in default statuses")
	}
	if status.Color != "#FF9500" {
		t.Errorf("Expected in_progress color #FF9500, got %q", status.Color)
	}
}

func TestLoadEmptyProjectIDReturnsDefaults(t *testing.T) {
	svc, _ := setupService(t)

	cfg := svc.Load(context.Background(), "")
	if cfg == nil || len(cfg.Statuses) == 0 {
		t.Fatal("Expected default config for empty project id")
	}
}

// ============================================================================
// Save
// ============================================================================

func TestSaveRoundTrip(t *testing.T) {
	svc, projectID := setupService(t)
	ctx := context.Background()

	cfg := models.DefaultTaskConfig()
	cfg.Priorities = append(cfg.Priorities, models.ConfigEntry{
		ID: "Urgent!", Name: "Urgent", Color: "#FF2D55",
	})
	if err := svc.Save(ctx, projectID, cfg); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded := svc.Load(ctx, projectID)
	if len(loaded.Priorities) != 4 {
		t.Fatalf("Expected 4 priorities after save, got %d", len(loaded.Priorities))
	}

	// The new entry id is normalized and orders are reassigned sequentially
	last := loaded.Priorities[3]
	if last.ID != "urgent" {
		t.Errorf("Expected normalized id 'urgent', got %q", last.ID)
	}
	if last.Order != 3 {
		t.Errorf("Expected order 3, got %d", last.Order)
	}
}

func TestSaveRejectsEmptySet(t *testing.T) {
	svc, projectID := setupService(t)

	cfg := models.DefaultTaskConfig()
	cfg.Healths = nil
	if err := svc.Save(context.Background(), projectID, cfg); err != ErrEmptyTaxonomy {
		t.Errorf("Expected ErrEmptyTaxonomy, got %v", err)
	}
}

func TestSaveRejectsEntryNormalizingToEmpty(t *testing.T) {
	svc, projectID := setupService(t)

	cfg := models.DefaultTaskConfig()
	cfg.Statuses = append(cfg.Statuses, models.ConfigEntry{ID: "!!!", Name: "Bad"})
	if err := svc.Save(context.Background(), projectID, cfg); err != ErrEmptyEntryID {
		t.Errorf("Expected ErrEmptyEntryID, got %v", err)
	}
}

func TestSaveEmptyProjectID(t *testing.T) {
	svc, _ := setupService(t)

	if err := svc.Save(context.Background(), "", models.DefaultTaskConfig()); err != ErrInvalidProjectID {
		t.Errorf("Expected ErrInvalidProjectID, got %v", err)
	}
}

// ============================================================================
// RemoveEntry / NormalizeID
// ============================================================================

func TestRemoveEntry(t *testing.T) {
	entries := []models.ConfigEntry{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out, err := RemoveEntry(entries, "b")
	if err != nil {
		t.Fatalf("Failed to remove entry: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "c" {
		t.Errorf("Expected [a c], got %v", out)
	}
}

func TestRemoveLastEntryRejected(t *testing.T) {
	entries := []models.ConfigEntry{{ID: "only"}}

	out, err := RemoveEntry(entries, "only")
	if err != ErrLastEntry {
		t.Errorf("Expected ErrLastEntry, got %v", err)
	}
	if len(out) != 1 {
		t.Errorf("Expected set unchanged on rejection, got %v", out)
	}
}

func TestNormalizeID(t *testing.T) {
	cases := map[string]string{
		"In Progress":  "inprogress",
		"at_risk":      "at_risk",
		"HIGH":         "high",
		"v2.0-beta":    "v20beta",
		"___":          "___",
		"Done ✓":       "done",
		"123 numbers!": "123numbers",
	}
	for in, want := range cases {
		if got := NormalizeID(in); got != want {
			t.Errorf("NormalizeID(%q): expected %q, got %q", in, want, got)
		}
	}
}
