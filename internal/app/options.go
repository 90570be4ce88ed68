package app

import (
	appconfig "github.com/phoenix-pm/phoenix/internal/config"
	"github.com/phoenix-pm/phoenix/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*App)

// WithConfig overrides the user configuration instead of loading it from
// the config file
func WithConfig(cfg *appconfig.Config) Option {
	return func(a *App) {
		a.Config = cfg
	}
}

// WithSessionStore overrides the session store, mainly for tests
func WithSessionStore(store session.Store) Option {
	return func(a *App) {
		a.Session = store
	}
}
