package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// CommentRepo handles pure data access for task comments
type CommentRepo struct {
	db *sql.DB
}

// GetCommentsByTask retrieves a task's comments oldest-first, joined with
// the author's email for display
func (r *CommentRepo) GetCommentsByTask(ctx context.Context, taskID string) ([]*models.Comment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.task_id, c.body, c.author_id, COALESCE(u.email, ''), c.created_at
		 FROM task_comments c
		 LEFT JOIN users u ON u.id = c.author_id
		 WHERE c.task_id = ?
		 ORDER BY c.created_at`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		c := &models.Comment{}
		if err := rows.Scan(&c.ID, &c.TaskID, &c.Body, &c.AuthorID, &c.AuthorEmail, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// CreateComment inserts a new comment
func (r *CommentRepo) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_comments (id, task_id, body, author_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.TaskID, comment.Body, comment.AuthorID, comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// DeleteComment removes a comment
func (r *CommentRepo) DeleteComment(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM task_comments WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	return nil
}
