package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// RunMigrations creates the database schema and seeds a default workspace,
// project and section set when the database is empty
func RunMigrations(ctx context.Context, db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS workspaces (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_by TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			workspace_id TEXT NOT NULL REFERENCES workspaces(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by TEXT NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS project_members (
			project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (project_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS task_sections (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			section_id TEXT REFERENCES task_sections(id),
			summary TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'todo',
			priority TEXT NOT NULL DEFAULT 'medium',
			estimation TEXT NOT NULL DEFAULT 'medium',
			health TEXT NOT NULL DEFAULT 'good',
			sort_order INTEGER NOT NULL DEFAULT 0,
			due_date TIMESTAMP,
			assignee_id TEXT REFERENCES users(id),
			tags TEXT NOT NULL DEFAULT '[]',
			created_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS task_comments (
			id TEXT PRIMARY KEY,
			task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
			body TEXT NOT NULL,
			author_id TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS task_configs (
			project_id TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
			config TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id, sort_order)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_section ON tasks(section_id, sort_order)`,
		`CREATE INDEX IF NOT EXISTS idx_sections_project ON task_sections(project_id, sort_order)`,
		`CREATE INDEX IF NOT EXISTS idx_comments_task ON task_comments(task_id, created_at)`,
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return seedDefaults(ctx, db)
}

// seedDefaults inserts a local user, workspace, project and the starter
// sections when the database is empty
func seedDefaults(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	userID := uuid.NewString()
	workspaceID := uuid.NewString()
	projectID := uuid.NewString()

	if _, err := db.ExecContext(ctx,
		"INSERT INTO users (id, email, full_name) VALUES (?, ?, ?)",
		userID, "local@phoenix", "Local User",
	); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO workspaces (id, name, created_by) VALUES (?, ?, ?)",
		workspaceID, "My Workspace", userID,
	); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO projects (id, workspace_id, name, created_by) VALUES (?, ?, ?, ?)",
		projectID, workspaceID, "My Project", userID,
	); err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx,
		"INSERT INTO project_members (project_id, user_id) VALUES (?, ?)",
		projectID, userID,
	); err != nil {
		return err
	}

	starter := []struct {
		name  string
		color string
	}{
		{"To Do", "#8E8E93"},
		{"In Progress", "#FF9500"},
		{"Done", "#34C759"},
	}
	for i, s := range starter {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO task_sections (id, project_id, name, color, sort_order, created_by)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), projectID, s.name, s.color, i, userID,
		); err != nil {
			return err
		}
	}

	return nil
}
