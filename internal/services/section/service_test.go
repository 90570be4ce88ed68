package section

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
	"github.com/phoenix-pm/phoenix/internal/testutil"
)

func setupService(t *testing.T) (Service, *sql.DB, string) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	projectID := testutil.CreateTestProject(t, db)
	return NewService(database.NewRepository(db)), db, projectID
}

// ============================================================================
// Create
// ============================================================================

func TestCreateAppendsAtEnd(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	testutil.CreateTestSection(t, db, projectID, "Backlog", 0)
	testutil.CreateTestSection(t, db, projectID, "Doing", 5)

	created, err := svc.Create(ctx, CreateSectionRequest{ProjectID: projectID, Name: "Review"})
	if err != nil {
		t.Fatalf("Failed to create section: %v", err)
	}

	if created.SortOrder != 6 {
		t.Errorf("Expected sort order 6, got %d", created.SortOrder)
	}
	if created.Color != models.DefaultSectionColor {
		t.Errorf("Expected default color, got %q", created.Color)
	}
	if created.ID == "" {
		t.Error("Expected an id to be assigned")
	}
}

func TestCreateAllowsDuplicateNames(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	testutil.CreateTestSection(t, db, projectID, "Doing", 0)

	if _, err := svc.Create(ctx, CreateSectionRequest{ProjectID: projectID, Name: "Doing"}); err != nil {
		t.Fatalf("Expected duplicate name to be allowed, got %v", err)
	}

	sections, err := svc.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to list sections: %v", err)
	}
	if len(sections) != 2 {
		t.Errorf("Expected 2 sections, got %d", len(sections))
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, projectID := setupService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateSectionRequest{ProjectID: projectID, Name: ""}); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateSectionRequest{ProjectID: "", Name: "X"}); err != ErrInvalidProjectID {
		t.Errorf("Expected ErrInvalidProjectID, got %v", err)
	}
}

// ============================================================================
// Delete
// ============================================================================

func TestDeleteLastSectionRejected(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	onlyID := testutil.CreateTestSection(t, db, projectID, "Only", 0)

	if err := svc.Delete(ctx, onlyID); err != ErrLastSection {
		t.Fatalf("Expected ErrLastSection, got %v", err)
	}

	// Rejection leaves the list untouched
	sections, err := svc.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to list sections: %v", err)
	}
	if len(sections) != 1 || sections[0].ID != onlyID {
		t.Errorf("Expected the section to survive, got %v", sections)
	}
}

func TestDeleteReassignsTasksToFirstRemaining(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	firstID := testutil.CreateTestSection(t, db, projectID, "First", 0)
	doomedID := testutil.CreateTestSection(t, db, projectID, "Doomed", 1)
	taskID := testutil.CreateTestTask(t, db, projectID, doomedID, "Homeless task", 0)

	if err := svc.Delete(ctx, doomedID); err != nil {
		t.Fatalf("Failed to delete section: %v", err)
	}

	var gotSection string
	if err := db.QueryRow("SELECT section_id FROM tasks WHERE id = ?", taskID).Scan(&gotSection); err != nil {
		t.Fatalf("Failed to query task: %v", err)
	}
	if gotSection != firstID {
		t.Errorf("Expected task reassigned to %s, got %s", firstID, gotSection)
	}

	sections, err := svc.ListByProject(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to list sections: %v", err)
	}
	if len(sections) != 1 || sections[0].ID != firstID {
		t.Errorf("Expected only the first section to remain, got %v", sections)
	}
}

func TestDeleteFirstSectionReassignsToNext(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	doomedID := testutil.CreateTestSection(t, db, projectID, "Doomed", 0)
	nextID := testutil.CreateTestSection(t, db, projectID, "Next", 1)
	taskID := testutil.CreateTestTask(t, db, projectID, doomedID, "Task", 0)

	if err := svc.Delete(ctx, doomedID); err != nil {
		t.Fatalf("Failed to delete section: %v", err)
	}

	var gotSection string
	if err := db.QueryRow("SELECT section_id FROM tasks WHERE id = ?", taskID).Scan(&gotSection); err != nil {
		t.Fatalf("Failed to query task: %v", err)
	}
	if gotSection != nextID {
		t.Errorf("Expected task reassigned to %s, got %s", nextID, gotSection)
	}
}

// ============================================================================
// Update
// ============================================================================

func TestUpdateRename(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	id := testutil.CreateTestSection(t, db, projectID, "Old", 0)

	if err := svc.Update(ctx, id, "New", "#FF0000"); err != nil {
		t.Fatalf("Failed to update section: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Failed to get section: %v", err)
	}
	if got.Name != "New" || got.Color != "#FF0000" {
		t.Errorf("Expected New/#FF0000, got %s/%s", got.Name, got.Color)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc, db, projectID := setupService(t)
	ctx := context.Background()

	id := testutil.CreateTestSection(t, db, projectID, "Keep", 0)

	if err := svc.Update(ctx, id, "", "#FF0000"); err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
	if err := svc.Update(ctx, "", "Name", ""); err != ErrInvalidSectionID {
		t.Errorf("Expected ErrInvalidSectionID, got %v", err)
	}
}
