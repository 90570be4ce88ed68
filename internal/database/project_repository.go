package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// ProjectRepo handles pure data access for workspaces, projects and members
type ProjectRepo struct {
	db *sql.DB
}

// GetAllWorkspaces retrieves every workspace
func (r *ProjectRepo) GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, created_by, created_at FROM workspaces ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("failed to query workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*models.Workspace
	for rows.Next() {
		w := &models.Workspace{}
		if err := rows.Scan(&w.ID, &w.Name, &w.CreatedBy, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace row: %w", err)
		}
		workspaces = append(workspaces, w)
	}
	return workspaces, rows.Err()
}

// GetProjectsByWorkspace retrieves a workspace's projects
func (r *ProjectRepo) GetProjectsByWorkspace(ctx context.Context, workspaceID string) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, workspace_id, name, description, created_by, created_at, updated_at
		 FROM projects WHERE workspace_id = ? ORDER BY created_at`,
		workspaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p := &models.Project{}
		if err := rows.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject retrieves a single project by ID
func (r *ProjectRepo) GetProject(ctx context.Context, id string) (*models.Project, error) {
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, workspace_id, name, description, created_by, created_at, updated_at
		 FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.Description, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return p, nil
}

// GetProjectUsersWithEmails retrieves a project's members with their display
// fields. Mirrors the get_project_users_with_emails procedure of the hosted
// backend.
func (r *ProjectRepo) GetProjectUsersWithEmails(ctx context.Context, projectID string) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.id, u.email, u.full_name
		 FROM project_members m
		 JOIN users u ON u.id = m.user_id
		 WHERE m.project_id = ?
		 ORDER BY u.email`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query project users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetLocalUser returns the seeded local user standing in for the
// authenticated session identity
func (r *ProjectRepo) GetLocalUser(ctx context.Context) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, full_name FROM users ORDER BY created_at LIMIT 1",
	).Scan(&u.ID, &u.Email, &u.FullName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no local user seeded")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get local user: %w", err)
	}
	return u, nil
}
