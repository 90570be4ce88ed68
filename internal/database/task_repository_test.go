package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
	"github.com/phoenix-pm/phoenix/internal/testutil"
)

func TestCreateAndGetTask(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	sectionID := testutil.CreateTestSection(t, db, projectID, "Backlog", 0)

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task := &models.Task{
		ProjectID:   projectID,
		SectionID:   sectionID,
		Summary:     "Write the parser",
		Description: "Start with the happy path",
		Status:      "todo",
		Priority:    "high",
		Estimation:  "large",
		Health:      "good",
		DueDate:     &due,
		Tags:        []string{"parser", "core"},
	}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	if task.ID == "" {
		t.Fatal("Expected an id to be generated")
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if got.Summary != "Write the parser" || got.Priority != "high" {
		t.Errorf("Expected stored fields back, got %s/%s", got.Summary, got.Priority)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, got.DueDate)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "parser" {
		t.Errorf("Expected tags round trip, got %v", got.Tags)
	}
	if got.CompletedAt != nil {
		t.Error("Expected nil completed_at")
	}
}

func TestUpdateTaskFieldsPartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	sectionID := testutil.CreateTestSection(t, db, projectID, "Backlog", 0)
	taskID := testutil.CreateTestTask(t, db, projectID, sectionID, "Original", 0)

	summary := "Renamed"
	order := 7
	if err := repo.UpdateTaskFields(ctx, taskID, models.TaskPatch{
		Summary:   &summary,
		SortOrder: &order,
	}); err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	got, err := repo.GetTask(ctx, taskID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}
	if got.Summary != "Renamed" || got.SortOrder != 7 {
		t.Errorf("Expected Renamed/7, got %s/%d", got.Summary, got.SortOrder)
	}
	// Untouched columns keep their defaults
	if got.Status != "todo" || got.Priority != "medium" {
		t.Errorf("Expected untouched columns preserved, got %s/%s", got.Status, got.Priority)
	}
}

func TestUpdateTaskFieldsCompletedAtClear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	sectionID := testutil.CreateTestSection(t, db, projectID, "Backlog", 0)
	taskID := testutil.CreateTestTask(t, db, projectID, sectionID, "Stamped", 0)

	now := time.Now().UTC()
	if err := repo.UpdateTaskFields(ctx, taskID, models.TaskPatch{CompletedAt: &now}); err != nil {
		t.Fatalf("Failed to stamp task: %v", err)
	}
	got, _ := repo.GetTask(ctx, taskID)
	if got.CompletedAt == nil {
		t.Fatal("Expected completed_at set")
	}

	if err := repo.UpdateTaskFields(ctx, taskID, models.TaskPatch{ClearCompletedAt: true}); err != nil {
		t.Fatalf("Failed to clear stamp: %v", err)
	}
	got, _ = repo.GetTask(ctx, taskID)
	if got.CompletedAt != nil {
		t.Error("Expected completed_at cleared")
	}
}

func TestUpdateTaskFieldsEmptyPatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)

	// An empty patch writes nothing and succeeds
	if err := repo.UpdateTaskFields(context.Background(), "any", models.TaskPatch{}); err != nil {
		t.Errorf("Expected empty patch to be a no-op, got %v", err)
	}
}

func TestGetProjectTasksWithDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	sectionID := testutil.CreateTestSection(t, db, projectID, "Backlog", 0)

	if _, err := db.Exec("INSERT INTO users (id, email, full_name) VALUES ('u1', 'dev@phoenix', 'Dev One')"); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	assigned := &models.Task{
		ProjectID:  projectID,
		SectionID:  sectionID,
		Summary:    "Assigned",
		Status:     "todo",
		Priority:   "medium",
		Estimation: "medium",
		Health:     "good",
		AssigneeID: "u1",
		SortOrder:  1,
	}
	if err := repo.CreateTask(ctx, assigned); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}
	plainID := testutil.CreateTestTask(t, db, projectID, sectionID, "Unassigned", 0)
	for _, commentID := range []string{"c1", "c2"} {
		if _, err := db.Exec(
			"INSERT INTO task_comments (id, task_id, body) VALUES (?, ?, 'note')",
			commentID, assigned.ID,
		); err != nil {
			t.Fatalf("Failed to insert comment: %v", err)
		}
	}

	tasks, err := repo.GetProjectTasksWithDetails(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to query details: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	// Ordered by sort_order: unassigned first
	if tasks[0].ID != plainID {
		t.Errorf("Expected sort_order ordering, got %s first", tasks[0].ID)
	}
	if tasks[0].AssigneeEmail != "" || tasks[0].CommentCount != 0 {
		t.Error("Expected empty enrichment for unassigned task")
	}
	if tasks[1].AssigneeEmail != "dev@phoenix" || tasks[1].AssigneeFullName != "Dev One" {
		t.Errorf("Expected assignee enrichment, got %s/%s", tasks[1].AssigneeEmail, tasks[1].AssigneeFullName)
	}
	if tasks[1].CommentCount != 2 {
		t.Errorf("Expected 2 comments, got %d", tasks[1].CommentCount)
	}
}

func TestReassignSectionTasks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	fromID := testutil.CreateTestSection(t, db, projectID, "From", 0)
	toID := testutil.CreateTestSection(t, db, projectID, "To", 1)
	t1 := testutil.CreateTestTask(t, db, projectID, fromID, "One", 0)
	t2 := testutil.CreateTestTask(t, db, projectID, fromID, "Two", 1)
	stay := testutil.CreateTestTask(t, db, projectID, toID, "Stay", 0)

	if err := repo.ReassignSectionTasks(ctx, fromID, toID); err != nil {
		t.Fatalf("Failed to reassign: %v", err)
	}

	for _, id := range []string{t1, t2, stay} {
		got, err := repo.GetTask(ctx, id)
		if err != nil {
			t.Fatalf("Failed to get task: %v", err)
		}
		if got.SectionID != toID {
			t.Errorf("Expected task %s in target section, got %s", id, got.SectionID)
		}
	}
}

func TestDeleteTaskCascadesComments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db)
	sectionID := testutil.CreateTestSection(t, db, projectID, "Backlog", 0)
	taskID := testutil.CreateTestTask(t, db, projectID, sectionID, "Doomed", 0)
	if _, err := db.Exec("INSERT INTO task_comments (id, task_id, body) VALUES ('c1', ?, 'bye')", taskID); err != nil {
		t.Fatalf("Failed to insert comment: %v", err)
	}

	if err := repo.DeleteTask(ctx, taskID); err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	var comments int
	if err := db.QueryRow("SELECT COUNT(*) FROM task_comments").Scan(&comments); err != nil {
		t.Fatalf("Failed to count comments: %v", err)
	}
	if comments != 0 {
		t.Errorf("Expected comments cascaded, got %d", comments)
	}
}
