// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// TaskReader defines read operations for tasks
type TaskReader interface {
	GetTasksByProject(ctx context.Context, projectID string) ([]*models.Task, error)
	GetProjectTasksWithDetails(ctx context.Context, projectID string) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
}

// TaskWriter defines write operations for tasks
type TaskWriter interface {
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTaskFields(ctx context.Context, id string, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
	ReassignSectionTasks(ctx context.Context, fromSectionID, toSectionID string) error
}

// TaskRepository combines all task-related operations
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// SectionRepository defines operations for board sections
type SectionRepository interface {
	GetSectionsByProject(ctx context.Context, projectID string) ([]*models.Section, error)
	GetSection(ctx context.Context, id string) (*models.Section, error)
	CountSectionsByProject(ctx context.Context, projectID string) (int, error)
	CreateSection(ctx context.Context, section *models.Section) error
	UpdateSection(ctx context.Context, id, name, color string) error
	DeleteSection(ctx context.Context, id string) error
}

// ConfigRepository defines operations for the per-project taxonomy bundle
type ConfigRepository interface {
	GetProjectTaskConfig(ctx context.Context, projectID string) (*models.TaskConfig, error)
	UpdateProjectTaskConfig(ctx context.Context, projectID string, cfg *models.TaskConfig) error
}

// CommentRepository defines operations for task comments
type CommentRepository interface {
	GetCommentsByTask(ctx context.Context, taskID string) ([]*models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id string) error
}

// ProjectRepository defines operations for workspaces, projects and members
type ProjectRepository interface {
	GetAllWorkspaces(ctx context.Context) ([]*models.Workspace, error)
	GetProjectsByWorkspace(ctx context.Context, workspaceID string) ([]*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectUsersWithEmails(ctx context.Context, projectID string) ([]*models.User, error)
	GetLocalUser(ctx context.Context) (*models.User, error)
}

// DataStore defines the unified interface for all data operations needed by
// the services and the TUI. It is composed of smaller, domain-specific
// interfaces so consumers can depend on just the slice they use.
type DataStore interface {
	TaskRepository
	SectionRepository
	ConfigRepository
	CommentRepository
	ProjectRepository
}
