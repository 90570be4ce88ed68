package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/phoenix-pm/phoenix/internal/models"
)

// ErrConfigNotFound indicates a project has no stored taxonomy bundle
var ErrConfigNotFound = errors.New("task config not found")

// ConfigRepo stores the per-project taxonomy bundle as a JSON document,
// mirroring the get/update_project_task_config procedures of the hosted
// backend
type ConfigRepo struct {
	db *sql.DB
}

// GetProjectTaskConfig retrieves the stored bundle for a project.
// Returns ErrConfigNotFound when none has been saved yet.
func (r *ConfigRepo) GetProjectTaskConfig(ctx context.Context, projectID string) (*models.TaskConfig, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		"SELECT config FROM task_configs WHERE project_id = ?", projectID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task config: %w", err)
	}

	cfg := &models.TaskConfig{}
	if err := json.Unmarshal([]byte(raw), cfg); err != nil {
		return nil, fmt.Errorf("failed to decode task config: %w", err)
	}
	return cfg, nil
}

// UpdateProjectTaskConfig persists the bundle, inserting or replacing the
// project's row
func (r *ConfigRepo) UpdateProjectTaskConfig(ctx context.Context, projectID string, cfg *models.TaskConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode task config: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO task_configs (project_id, config, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (project_id) DO UPDATE SET config = excluded.config, updated_at = CURRENT_TIMESTAMP`,
		projectID, string(raw),
	)
	if err != nil {
		return fmt.Errorf("failed to save task config: %w", err)
	}
	return nil
}
