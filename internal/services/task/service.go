// Package task implements the task store and the mutation coordinator:
// loading a project's board, creating, editing, moving and deleting tasks
// with write-then-patch optimistic updates.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phoenix-pm/phoenix/internal/board"
	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/events"
	"github.com/phoenix-pm/phoenix/internal/models"
	configsvc "github.com/phoenix-pm/phoenix/internal/services/config"
)

// Service defines all task-related business operations
type Service interface {
	// LoadBoard fetches the project's tasks into the store, preferring the
	// enriched fetch and falling back to the plain one so the board always
	// has base data.
	LoadBoard(ctx context.Context, projectID string) ([]*models.Task, error)

	// Store exposes the in-memory collection
	Store() *Store

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, taskID string, patch models.TaskPatch) (*models.Task, error)
	QuickToggleComplete(ctx context.Context, taskID string) (*models.Task, error)
	Delete(ctx context.Context, taskID string) error

	// Move applies a drag-initiated move into another group of the active
	// layout. It patches the store but does not fire the TaskUpdated
	// notification; the drop handler owns that refresh.
	Move(ctx context.Context, taskID string, target board.Group) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Classification fields left empty are defaulted from the active taxonomy
// bundle; a missing section defaults to the project's first section.
type CreateTaskRequest struct {
	ProjectID   string
	Summary     string
	Description string
	SectionID   string
	Status      string
	Priority    string
	Estimation  string
	Health      string
	DueDate     *time.Time
	AssigneeID  string
	Tags        []string
	CreatedBy   string
}

// repo is the slice of the datastore this service needs
type repo interface {
	database.TaskRepository
	GetSectionsByProject(ctx context.Context, projectID string) ([]*models.Section, error)
}

type service struct {
	repo    repo
	configs configsvc.Service
	emitter *events.Emitter
	store   *Store

	// projectID of the currently loaded board, used to validate move
	// targets against live sections/taxonomies
	projectID string
}

// NewService creates a new task service. The emitter may be nil.
func NewService(r repo, configs configsvc.Service, emitter *events.Emitter) Service {
	return &service{
		repo:    r,
		configs: configs,
		emitter: emitter,
		store:   NewStore(),
	}
}

// Store exposes the in-memory task collection
func (s *service) Store() *Store {
	return s.store
}

// LoadBoard loads a project's tasks. The enriched fetch joins assignee
// display fields and comment counts; if it fails the plain fetch keeps the
// board usable without enrichment.
func (s *service) LoadBoard(ctx context.Context, projectID string) ([]*models.Task, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	tasks, err := s.repo.GetProjectTasksWithDetails(ctx, projectID)
	if err != nil {
		slog.Warn("enriched task fetch failed, falling back to plain fetch", "project", projectID, "error", err)
		tasks, err = s.repo.GetTasksByProject(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tasks: %w", err)
		}
	}

	s.projectID = projectID
	s.store.Replace(tasks)
	return tasks, nil
}

// Create handles task creation with validation and configuration defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.ProjectID == "" {
		return nil, ErrInvalidProjectID
	}
	if strings.TrimSpace(req.Summary) == "" {
		return nil, ErrEmptySummary
	}
	if len(req.Summary) > models.MaxSummaryLength {
		return nil, ErrSummaryTooLong
	}

	cfg := s.configs.Load(ctx, req.ProjectID)

	sectionID := req.SectionID
	if sectionID == "" {
		sections, err := s.repo.GetSectionsByProject(ctx, req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to list sections: %w", err)
		}
		if len(sections) > 0 {
			sectionID = sections[0].ID
		}
	}

	created := &models.Task{
		ProjectID:   req.ProjectID,
		Summary:     strings.TrimSpace(req.Summary),
		Description: req.Description,
		SectionID:   sectionID,
		Status:      defaultEntryID(cfg.Statuses, req.Status, models.StatusTodo),
		Priority:    defaultEntryID(cfg.Priorities, req.Priority, models.DefaultPriority),
		Estimation:  defaultEntryID(cfg.Estimations, req.Estimation, models.DefaultEstimation),
		Health:      defaultEntryID(cfg.Healths, req.Health, models.DefaultHealth),
		SortOrder:   0,
		DueDate:     req.DueDate,
		AssigneeID:  req.AssigneeID,
		Tags:        req.Tags,
		CreatedBy:   req.CreatedBy,
	}
	if created.Status == models.StatusCompleted {
		now := time.Now().UTC()
		created.CompletedAt = &now
	}

	if err := s.repo.CreateTask(ctx, created); err != nil {
		return nil, err
	}

	s.store.Add(created)
	if s.emitter != nil {
		s.emitter.TaskCreated(created)
	}
	return created, nil
}

// Update applies a field-level edit: remote write first, local patch after
// the write is confirmed, then the TaskUpdated notification
func (s *service) Update(ctx context.Context, taskID string, patch models.TaskPatch) (*models.Task, error) {
	return s.applyUpdate(ctx, taskID, patch, true)
}

// QuickToggleComplete flips a task between completed and todo
func (s *service) QuickToggleComplete(ctx context.Context, taskID string) (*models.Task, error) {
	current, ok := s.store.Get(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}

	next := models.StatusCompleted
	if current.Status == models.StatusCompleted {
		next = models.StatusTodo
	}
	return s.applyUpdate(ctx, taskID, models.TaskPatch{Status: &next}, true)
}

// Delete removes a task remotely, then locally
func (s *service) Delete(ctx context.Context, taskID string) error {
	if taskID == "" {
		return ErrInvalidTaskID
	}
	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	s.store.Remove(taskID)
	if s.emitter != nil {
		s.emitter.TaskDeleted(taskID)
	}
	return nil
}

// Move handles a drop into another group of the active layout:
// the task lands at the end of the target group (max sort_order + 1), the
// classification field matching the group kind takes the target's id, and
// completion is derived from the transition. Dropping a task onto its own
// group is a no-op with no network write.
func (s *service) Move(ctx context.Context, taskID string, target board.Group) error {
	current, ok := s.store.Get(taskID)
	if !ok {
		return ErrTaskNotFound
	}

	if target.Kind.FieldValue(current) == target.ID {
		return nil
	}

	if err := s.validateTarget(ctx, target); err != nil {
		return err
	}

	newOrder := board.MaxSortOrder(s.store.All(), target) + 1
	patch := models.TaskPatch{SortOrder: &newOrder}

	switch target.Kind {
	case board.KindSection:
		sectionID := target.ID
		patch.SectionID = &sectionID
		// Dropping into a section named "Done" marks the task completed
		// regardless of the configured completed id.
		if strings.EqualFold(target.Name, models.DoneSectionName) {
			completed := models.StatusCompleted
			now := time.Now().UTC()
			patch.Status = &completed
			patch.CompletedAt = &now
		}
	case board.KindStatus:
		status := target.ID
		patch.Status = &status
	case board.KindPriority:
		priority := target.ID
		patch.Priority = &priority
	case board.KindEstimation:
		estimation := target.ID
		patch.Estimation = &estimation
	case board.KindHealth:
		health := target.ID
		patch.Health = &health
	}

	// Drag moves skip the TaskUpdated notification: the drop handler
	// already refreshes the view, and firing both re-renders it twice.
	_, err := s.applyUpdate(ctx, taskID, patch, false)
	return err
}

// applyUpdate is the single write path: it derives the completion stamp
// from the status transition, performs the remote write, and only then
// patches the in-memory copy
func (s *service) applyUpdate(ctx context.Context, taskID string, patch models.TaskPatch, notify bool) (*models.Task, error) {
	if taskID == "" {
		return nil, ErrInvalidTaskID
	}
	current, ok := s.store.Get(taskID)
	if !ok {
		return nil, ErrTaskNotFound
	}
	if patch.Summary != nil {
		if strings.TrimSpace(*patch.Summary) == "" {
			return nil, ErrEmptySummary
		}
		if len(*patch.Summary) > models.MaxSummaryLength {
			return nil, ErrSummaryTooLong
		}
	}

	// Status transition rule: entering the completed status stamps
	// completed_at, leaving it clears the stamp. Applies uniformly to quick
	// toggles, form edits and drag moves.
	if patch.Status != nil && patch.CompletedAt == nil {
		if *patch.Status == models.StatusCompleted {
			if current.Status != models.StatusCompleted {
				now := time.Now().UTC()
				patch.CompletedAt = &now
			}
		} else {
			patch.ClearCompletedAt = true
		}
	}

	if err := s.repo.UpdateTaskFields(ctx, taskID, patch); err != nil {
		return nil, err
	}

	updated, _ := s.store.ApplyLocalPatch(taskID, patch)
	if notify && s.emitter != nil {
		s.emitter.TaskUpdated(updated)
	}
	return updated, nil
}

// validateTarget rejects moves onto groups deleted mid-drag
func (s *service) validateTarget(ctx context.Context, target board.Group) error {
	if target.Kind == board.KindSection {
		sections, err := s.repo.GetSectionsByProject(ctx, s.projectID)
		if err != nil {
			return fmt.Errorf("failed to validate move target: %w", err)
		}
		for _, sec := range sections {
			if sec.ID == target.ID {
				return nil
			}
		}
		return ErrStaleTarget
	}

	cfg := s.configs.Load(ctx, s.projectID)
	var entries []models.ConfigEntry
	switch target.Kind {
	case board.KindStatus:
		entries = cfg.Statuses
	case board.KindPriority:
		entries = cfg.Priorities
	case board.KindEstimation:
		entries = cfg.Estimations
	case board.KindHealth:
		entries = cfg.Healths
	}
	if _, ok := models.EntryByID(entries, target.ID); !ok {
		return ErrStaleTarget
	}
	return nil
}

// defaultEntryID picks the requested id if set, the preferred well-known id
// if the taxonomy still has it, and otherwise the taxonomy's first entry
func defaultEntryID(entries []models.ConfigEntry, requested, preferred string) string {
	if requested != "" {
		return requested
	}
	if _, ok := models.EntryByID(entries, preferred); ok {
		return preferred
	}
	if len(entries) > 0 {
		return entries[0].ID
	}
	return preferred
}
