// Package section manages the user-defined board columns of a project
package section

import (
	"context"
	"fmt"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// Service defines all section-related business operations
type Service interface {
	// Read operations
	ListByProject(ctx context.Context, projectID string) ([]*models.Section, error)
	Get(ctx context.Context, id string) (*models.Section, error)

	// Write operations
	Create(ctx context.Context, req CreateSectionRequest) (*models.Section, error)
	Update(ctx context.Context, id, name, color string) error
	Delete(ctx context.Context, id string) error
}

// CreateSectionRequest encapsulates data for creating a section
type CreateSectionRequest struct {
	ProjectID string
	Name      string
	Color     string
	CreatedBy string
}

// repo is the slice of the datastore this service needs: section rows plus
// the task reassignment the delete path performs
type repo interface {
	database.SectionRepository
	ReassignSectionTasks(ctx context.Context, fromSectionID, toSectionID string) error
}

type service struct {
	repo repo
}

// NewService creates a new section service
func NewService(r repo) Service {
	return &service{repo: r}
}

// ListByProject retrieves a project's sections sorted by sort_order
func (s *service) ListByProject(ctx context.Context, projectID string) ([]*models.Section, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetSectionsByProject(ctx, projectID)
}

// Get retrieves a single section
func (s *service) Get(ctx context.Context, id string) (*models.Section, error) {
	if id == "" {
		return nil, ErrInvalidSectionID
	}
	return s.repo.GetSection(ctx, id)
}

// Create appends a new section at the next sort position. Names are not
// required to be unique.
func (s *service) Create(ctx context.Context, req CreateSectionRequest) (*models.Section, error) {
	if req.ProjectID == "" {
		return nil, ErrInvalidProjectID
	}
	if req.Name == "" {
		return nil, ErrEmptyName
	}
	if len(req.Name) > models.MaxSummaryLength {
		return nil, ErrNameTooLong
	}

	existing, err := s.repo.GetSectionsByProject(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	nextOrder := 0
	for _, sec := range existing {
		if sec.SortOrder >= nextOrder {
			nextOrder = sec.SortOrder + 1
		}
	}

	color := req.Color
	if color == "" {
		color = models.DefaultSectionColor
	}

	created := &models.Section{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Color:     color,
		SortOrder: nextOrder,
		CreatedBy: req.CreatedBy,
	}
	if err := s.repo.CreateSection(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update renames a section and/or changes its color
func (s *service) Update(ctx context.Context, id, name, color string) error {
	if id == "" {
		return ErrInvalidSectionID
	}
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > models.MaxSummaryLength {
		return ErrNameTooLong
	}
	return s.repo.UpdateSection(ctx, id, name, color)
}

// Delete removes a section. A project must always retain at least one
// section; deleting the last remaining one is rejected with no partial
// effect. Otherwise the section's tasks move to the first remaining section
// before the row is removed.
func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidSectionID
	}

	doomed, err := s.repo.GetSection(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get section: %w", err)
	}

	count, err := s.repo.CountSectionsByProject(ctx, doomed.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to count sections: %w", err)
	}
	if count <= 1 {
		return ErrLastSection
	}

	siblings, err := s.repo.GetSectionsByProject(ctx, doomed.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	// First remaining section by sort order receives the orphaned tasks
	var target *models.Section
	for _, sec := range siblings {
		if sec.ID != id {
			target = sec
			break
		}
	}

	if err := s.repo.ReassignSectionTasks(ctx, id, target.ID); err != nil {
		return fmt.Errorf("failed to reassign tasks: %w", err)
	}
	if err := s.repo.DeleteSection(ctx, id); err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}
