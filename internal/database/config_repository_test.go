package database_test

import (
	"context"
	"testing"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
	"github.com/phoenix-pm/phoenix/internal/testutil"
)

func TestGetProjectTaskConfigNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	projectID := testutil.CreateTestProject(t, db)

	if _, err := repo.GetProjectTaskConfig(context.Background(), projectID); err != database.ErrConfigNotFound {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestUpdateProjectTaskConfigUpsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()
	projectID := testutil.CreateTestProject(t, db)

	first := models.DefaultTaskConfig()
	if err := repo.UpdateProjectTaskConfig(ctx, projectID, first); err != nil {
		t.Fatalf("Failed to insert config: %v", err)
	}

	second := models.DefaultTaskConfig()
	second.Statuses = append(second.Statuses, models.ConfigEntry{
		ID: "blocked", Name: "Blocked", Color: "#FF3B30", Order: 3,
	})
	if err := repo.UpdateProjectTaskConfig(ctx, projectID, second); err != nil {
		t.Fatalf("Failed to update config: %v", err)
	}

	got, err := repo.GetProjectTaskConfig(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to get config: %v", err)
	}
	if len(got.Statuses) != 4 {
		t.Errorf("Expected 4 statuses after upsert, got %d", len(got.Statuses))
	}
	if got.Statuses[3].ID != "blocked" {
		t.Errorf("Expected appended status, got %q", got.Statuses[3].ID)
	}

	// Only one row per project
	var rows int
	if err := db.QueryRow("SELECT COUNT(*) FROM task_configs").Scan(&rows); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected a single config row, got %d", rows)
	}
}
