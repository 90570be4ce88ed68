package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// TaskRepo handles pure data access for tasks.
// No business logic, no events, no validation - just database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, project_id, section_id, summary, description,
	status, priority, estimation, health, sort_order, due_date, assignee_id,
	tags, created_by, created_at, updated_at, completed_at`

// ============================================================================
// READS
// ============================================================================

// GetTasksByProject retrieves all tasks for a project ordered by sort_order.
// This is the plain fetch without denormalized joins, used as the fallback
// when the enriched fetch fails.
func (r *TaskRepo) GetTasksByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY sort_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetProjectTasksWithDetails retrieves a project's tasks enriched with the
// assignee's display fields and the comment count in a single query.
// Mirrors the get_project_tasks_with_details procedure of the hosted backend.
func (r *TaskRepo) GetProjectTasksWithDetails(ctx context.Context, projectID string) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT t.id, t.project_id, t.section_id, t.summary, t.description,
			t.status, t.priority, t.estimation, t.health, t.sort_order,
			t.due_date, t.assignee_id, t.tags, t.created_by, t.created_at,
			t.updated_at, t.completed_at,
			COALESCE(u.email, ''), COALESCE(u.full_name, ''),
			(SELECT COUNT(*) FROM task_comments c WHERE c.task_id = t.id)
		 FROM tasks t
		 LEFT JOIN users u ON u.id = t.assignee_id
		 WHERE t.project_id = ?
		 ORDER BY t.sort_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query task details: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		var sectionID, assigneeID sql.NullString
		var dueDate, completedAt sql.NullTime
		var tags string
		if err := rows.Scan(
			&task.ID, &task.ProjectID, &sectionID, &task.Summary, &task.Description,
			&task.Status, &task.Priority, &task.Estimation, &task.Health, &task.SortOrder,
			&dueDate, &assigneeID, &tags, &task.CreatedBy, &task.CreatedAt,
			&task.UpdatedAt, &completedAt,
			&task.AssigneeEmail, &task.AssigneeFullName, &task.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		task.SectionID = nullStringToString(sectionID)
		task.AssigneeID = nullStringToString(assigneeID)
		task.DueDate = nullTimeToPtr(dueDate)
		task.CompletedAt = nullTimeToPtr(completedAt)
		task.Tags = decodeTags(tags)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// GetTask retrieves a task by ID
func (r *TaskRepo) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

// ============================================================================
// WRITES
// ============================================================================

// CreateTask inserts a new task. A missing ID is generated; timestamps are
// stamped here so the returned model matches the stored row.
func (r *TaskRepo) CreateTask(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (id, project_id, section_id, summary, description,
			status, priority, estimation, health, sort_order, due_date,
			assignee_id, tags, created_by, created_at, updated_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.ProjectID, nullString(task.SectionID), task.Summary,
		task.Description, task.Status, task.Priority, task.Estimation,
		task.Health, task.SortOrder, nullTime(task.DueDate),
		nullString(task.AssigneeID), encodeTags(task.Tags), task.CreatedBy,
		task.CreatedAt, task.UpdatedAt, nullTime(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// UpdateTaskFields applies a partial update to a task row. Only the fields
// set on the patch are written; updated_at is always refreshed.
func (r *TaskRepo) UpdateTaskFields(ctx context.Context, id string, patch models.TaskPatch) error {
	var sets []string
	var args []any

	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Summary != nil {
		add("summary", *patch.Summary)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.Estimation != nil {
		add("estimation", *patch.Estimation)
	}
	if patch.Health != nil {
		add("health", *patch.Health)
	}
	if patch.SectionID != nil {
		add("section_id", nullString(*patch.SectionID))
	}
	if patch.SortOrder != nil {
		add("sort_order", *patch.SortOrder)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	} else if patch.ClearDueDate {
		add("due_date", nil)
	}
	if patch.AssigneeID != nil {
		add("assignee_id", nullString(*patch.AssigneeID))
	}
	if patch.Tags != nil {
		add("tags", encodeTags(*patch.Tags))
	}
	if patch.CompletedAt != nil {
		add("completed_at", *patch.CompletedAt)
	} else if patch.ClearCompletedAt {
		add("completed_at", nil)
	}

	if len(sets) == 0 {
		return nil
	}
	add("updated_at", time.Now().UTC())

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return nil
}

// DeleteTask removes a task; its comments cascade
func (r *TaskRepo) DeleteTask(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete task %s: %w", id, err)
	}
	return nil
}

// ReassignSectionTasks moves every task of one section to another.
// Used when a section is deleted.
func (r *TaskRepo) ReassignSectionTasks(ctx context.Context, fromSectionID, toSectionID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET section_id = ?, updated_at = CURRENT_TIMESTAMP WHERE section_id = ?`,
		toSectionID, fromSectionID,
	)
	if err != nil {
		return fmt.Errorf("failed to reassign tasks from section %s: %w", fromSectionID, err)
	}
	return nil
}

// scanTask reads a plain (non-enriched) task row
func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var sectionID, assigneeID sql.NullString
	var dueDate, completedAt sql.NullTime
	var tags string
	if err := row.Scan(
		&task.ID, &task.ProjectID, &sectionID, &task.Summary, &task.Description,
		&task.Status, &task.Priority, &task.Estimation, &task.Health, &task.SortOrder,
		&dueDate, &assigneeID, &tags, &task.CreatedBy, &task.CreatedAt,
		&task.UpdatedAt, &completedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to scan task row: %w", err)
	}
	task.SectionID = nullStringToString(sectionID)
	task.AssigneeID = nullStringToString(assigneeID)
	task.DueDate = nullTimeToPtr(dueDate)
	task.CompletedAt = nullTimeToPtr(completedAt)
	task.Tags = decodeTags(tags)
	return task, nil
}
