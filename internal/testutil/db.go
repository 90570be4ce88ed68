// Package testutil provides shared helpers for tests that need a real
// database
package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/phoenix-pm/phoenix/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema and no
// seeded rows
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := database.RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear seeded defaults so tests start from a blank slate
	for _, table := range []string{"task_comments", "tasks", "task_sections", "task_configs", "project_members", "projects", "workspaces", "users"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	return db
}

// CreateTestProject inserts a user, workspace and project and returns the
// project ID
func CreateTestProject(t *testing.T, db *sql.DB) string {
	t.Helper()

	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	projectID := uuid.NewString()

	if _, err := db.Exec("INSERT INTO users (id, email, full_name) VALUES (?, ?, ?)",
		userID, "test@phoenix", "Test User"); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	if _, err := db.Exec("INSERT INTO workspaces (id, name, created_by) VALUES (?, ?, ?)",
		workspaceID, "Test Workspace", userID); err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}
	if _, err := db.Exec("INSERT INTO projects (id, workspace_id, name, created_by) VALUES (?, ?, ?, ?)",
		projectID, workspaceID, "Test Project", userID); err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	if _, err := db.Exec("INSERT INTO project_members (project_id, user_id) VALUES (?, ?)",
		projectID, userID); err != nil {
		t.Fatalf("Failed to add project member: %v", err)
	}

	return projectID
}

// CreateTestSection inserts a section and returns its ID
func CreateTestSection(t *testing.T, db *sql.DB, projectID, name string, sortOrder int) string {
	t.Helper()

	id := uuid.NewString()
	if _, err := db.Exec(
		"INSERT INTO task_sections (id, project_id, name, color, sort_order) VALUES (?, ?, ?, ?, ?)",
		id, projectID, name, "#8E8E93", sortOrder,
	); err != nil {
		t.Fatalf("Failed to create test section: %v", err)
	}
	return id
}

// CreateTestTask inserts a task and returns its ID
func CreateTestTask(t *testing.T, db *sql.DB, projectID, sectionID, summary string, sortOrder int) string {
	t.Helper()

	id := uuid.NewString()
	if _, err := db.Exec(
		`INSERT INTO tasks (id, project_id, section_id, summary, sort_order) VALUES (?, ?, ?, ?, ?)`,
		id, projectID, sectionID, summary, sortOrder,
	); err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return id
}
