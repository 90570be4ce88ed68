// Package config resolves the active grouping taxonomy for a project,
// falling back to the built-in default bundle when none is stored remotely.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/models"
)

// Service defines all taxonomy-bundle operations
type Service interface {
	// Load never fails: any fetch error or absent bundle yields the
	// built-in default taxonomy.
	Load(ctx context.Context, projectID string) *models.TaskConfig

	// Save persists the four taxonomy arrays. It does not touch sections.
	Save(ctx context.Context, projectID string, cfg *models.TaskConfig) error
}

type service struct {
	repo database.ConfigRepository
}

// NewService creates a new configuration service
func NewService(repo database.ConfigRepository) Service {
	return &service{repo: repo}
}

// Load fetches the stored bundle; on any error or empty result it returns
// the default bundle rather than failing the caller
func (s *service) Load(ctx context.Context, projectID string) *models.TaskConfig {
	if projectID == "" {
		return models.DefaultTaskConfig()
	}

	cfg, err := s.repo.GetProjectTaskConfig(ctx, projectID)
	if err != nil {
		if err != database.ErrConfigNotFound {
			slog.Warn("failed to load task config, using defaults", "project", projectID, "error", err)
		}
		return models.DefaultTaskConfig()
	}
	if cfg == nil || isEmpty(cfg) {
		return models.DefaultTaskConfig()
	}
	return cfg
}

// Save validates and persists the bundle. Every set must retain at least
// one entry and every entry id is normalized before the write.
func (s *service) Save(ctx context.Context, projectID string, cfg *models.TaskConfig) error {
	if projectID == "" {
		return ErrInvalidProjectID
	}
	if len(cfg.Statuses) == 0 || len(cfg.Priorities) == 0 ||
		len(cfg.Estimations) == 0 || len(cfg.Healths) == 0 {
		return ErrEmptyTaxonomy
	}

	normalized := &models.TaskConfig{
		Statuses:    normalizeEntries(cfg.Statuses),
		Priorities:  normalizeEntries(cfg.Priorities),
		Estimations: normalizeEntries(cfg.Estimations),
		Healths:     normalizeEntries(cfg.Healths),
	}
	for _, set := range [][]models.ConfigEntry{
		normalized.Statuses, normalized.Priorities, normalized.Estimations, normalized.Healths,
	} {
		for _, e := range set {
			if e.ID == "" {
				return ErrEmptyEntryID
			}
		}
	}

	if err := s.repo.UpdateProjectTaskConfig(ctx, projectID, normalized); err != nil {
		return fmt.Errorf("failed to save task config: %w", err)
	}
	return nil
}

// RemoveEntry deletes one entry from a set, rejecting removal of the last
// one. Returns the shortened set.
func RemoveEntry(entries []models.ConfigEntry, id string) ([]models.ConfigEntry, error) {
	if len(entries) <= 1 {
		return entries, ErrLastEntry
	}
	out := make([]models.ConfigEntry, 0, len(entries)-1)
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out, nil
}

// NormalizeID lowercases an entry id and strips everything outside
// [a-z0-9_]
func NormalizeID(id string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(id) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeEntries(entries []models.ConfigEntry) []models.ConfigEntry {
	out := make([]models.ConfigEntry, len(entries))
	for i, e := range entries {
		e.ID = NormalizeID(e.ID)
		e.Order = i
		out[i] = e
	}
	return out
}

func isEmpty(cfg *models.TaskConfig) bool {
	return len(cfg.Statuses) == 0 && len(cfg.Priorities) == 0 &&
		len(cfg.Estimations) == 0 && len(cfg.Healths) == 0
}
