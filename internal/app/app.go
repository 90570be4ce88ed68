// Package app wires the repository, event emitter and services into a
// single container used by the commands.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	appconfig "github.com/phoenix-pm/phoenix/internal/config"
	"github.com/phoenix-pm/phoenix/internal/database"
	"github.com/phoenix-pm/phoenix/internal/events"
	"github.com/phoenix-pm/phoenix/internal/models"
	configsvc "github.com/phoenix-pm/phoenix/internal/services/config"
	sectionsvc "github.com/phoenix-pm/phoenix/internal/services/section"
	tasksvc "github.com/phoenix-pm/phoenix/internal/services/task"
	"github.com/phoenix-pm/phoenix/internal/session"
)

// App holds all application services and provides dependency injection
type App struct {
	db *sql.DB

	Repo    database.DataStore
	Emitter *events.Emitter

	Tasks    tasksvc.Service
	Sections sectionsvc.Service
	Configs  configsvc.Service

	Session session.Store
	Config  *appconfig.Config
	User    *models.User
}

// New creates the application container on top of an open database
func New(ctx context.Context, db *sql.DB, opts ...Option) (*App, error) {
	a := &App{db: db}
	for _, opt := range opts {
		opt(a)
	}

	if a.Config == nil {
		cfg, err := appconfig.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		a.Config = cfg
	}
	if a.Session == nil {
		store, err := session.NewFileStore()
		if err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
		a.Session = store
	}

	repo := database.NewRepository(db)
	a.Repo = repo
	a.Emitter = events.NewEmitter()
	a.Configs = configsvc.NewService(repo)
	a.Sections = sectionsvc.NewService(repo)
	a.Tasks = tasksvc.NewService(repo, a.Configs, a.Emitter)

	user, err := repo.GetLocalUser(ctx)
	if err != nil {
		slog.Warn("no local user found", "error", err)
		user = &models.User{}
	}
	a.User = user

	return a, nil
}

// Close releases application resources, including the database
func (a *App) Close() error {
	return a.db.Close()
}
