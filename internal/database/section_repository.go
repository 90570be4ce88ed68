package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// SectionRepo handles pure data access for board sections
type SectionRepo struct {
	db *sql.DB
}

// GetSectionsByProject retrieves all sections for a project ordered by
// sort_order ascending
func (r *SectionRepo) GetSectionsByProject(ctx context.Context, projectID string) ([]*models.Section, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, color, sort_order, created_by, created_at
		 FROM task_sections
		 WHERE project_id = ?
		 ORDER BY sort_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []*models.Section
	for rows.Next() {
		s := &models.Section{}
		if err := rows.Scan(&s.ID, &s.ProjectID, &s.Name, &s.Color, &s.SortOrder, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan section row: %w", err)
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// GetSection retrieves a single section by ID
func (r *SectionRepo) GetSection(ctx context.Context, id string) (*models.Section, error) {
	s := &models.Section{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, color, sort_order, created_by, created_at
		 FROM task_sections WHERE id = ?`, id,
	).Scan(&s.ID, &s.ProjectID, &s.Name, &s.Color, &s.SortOrder, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get section %s: %w", id, err)
	}
	return s, nil
}

// CountSectionsByProject returns how many sections a project has
func (r *SectionRepo) CountSectionsByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM task_sections WHERE project_id = ?", projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sections: %w", err)
	}
	return count, nil
}

// CreateSection inserts a new section. A missing ID is generated.
func (r *SectionRepo) CreateSection(ctx context.Context, section *models.Section) error {
	if section.ID == "" {
		section.ID = uuid.NewString()
	}
	section.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO task_sections (id, project_id, name, color, sort_order, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		section.ID, section.ProjectID, section.Name, section.Color,
		section.SortOrder, section.CreatedBy, section.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}
	return nil
}

// UpdateSection updates a section's name and color
func (r *SectionRepo) UpdateSection(ctx context.Context, id, name, color string) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE task_sections SET name = ?, color = ? WHERE id = ?",
		name, color, id,
	); err != nil {
		return fmt.Errorf("failed to update section %s: %w", id, err)
	}
	return nil
}

// DeleteSection removes a section row. Task reassignment is the caller's
// responsibility and must happen before the delete.
func (r *SectionRepo) DeleteSection(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM task_sections WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete section %s: %w", id, err)
	}
	return nil
}
