// Package app provides the application context and dependency management
// for the cinemap CLI. It centralizes configuration, logging and the
// lifecycle of the catalog loaded from the data file.
package app

import (
	"context"
	"io/fs"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/cinemap/internal/cmd/output"
	"github.com/agentstation/cinemap/pkg/catalogs"
	"github.com/agentstation/cinemap/pkg/errors"
)

// App represents the cinemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Catalog (lazy-loaded from the data file)
	mu      sync.RWMutex
	catalog *catalogs.Catalog
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file, then
// functional options are applied on top.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// DataFile returns the path of the data file.
func (a *App) DataFile() string {
	return a.config.DataFile
}

// ClearScreen reports whether interactive screens are cleared.
func (a *App) ClearScreen() bool {
	return a.config.ClearScreen
}

// OutputFormat returns the configured output format, or a format detected
// from stdout when none is set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Catalog returns the catalog, loading it from the data file on first use.
// A missing data file yields an empty catalog.
func (a *App) Catalog() (*catalogs.Catalog, error) {
	a.mu.RLock()
	if a.catalog != nil {
		cat := a.catalog
		a.mu.RUnlock()
		return cat, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	cat, err := a.loadCatalog()
	if err != nil {
		return nil, err
	}

	a.catalog = cat
	return cat, nil
}

// SaveCatalog writes the catalog back to the data file. Nothing is written
// if the catalog was never loaded.
func (a *App) SaveCatalog() error {
	a.mu.RLock()
	cat := a.catalog
	a.mu.RUnlock()

	if cat == nil {
		return nil
	}
	if err := cat.SaveToFile(a.config.DataFile); err != nil {
		return errors.WrapResource("save", "catalog", a.config.DataFile, err)
	}

	a.logger.Info().
		Str("path", a.config.DataFile).
		Int("movies", cat.Len()).
		Msg("Catalog saved")
	return nil
}

// Shutdown performs graceful shutdown of the application. The catalog is
// only flushed by explicit saves, so there is nothing to stop.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

func (a *App) loadCatalog() (*catalogs.Catalog, error) {
	path := a.config.DataFile
	cat := catalogs.New(catalogs.WithLogger(a.logger))

	report, err := cat.LoadFromFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Warn().Str("path", path).Msg("Data file not found, starting with an empty catalog")
	case err != nil:
		return nil, errors.WrapResource("load", "catalog", path, err)
	default:
		a.logger.Debug().
			Str("path", path).
			Int("loaded", report.Loaded).
			Int("skipped", len(report.Skipped)).
			Msg("Catalog loaded")
	}

	a.registerHooks(cat)
	return cat, nil
}

func (a *App) registerHooks(cat *catalogs.Catalog) {
	cat.OnMovieAdded(func(m catalogs.Movie) {
		a.logger.Trace().Str("id", m.ID()).Str("title", m.Title()).Msg("Movie added to catalog")
	})
	cat.OnMovieRemoved(func(m catalogs.Movie) {
		a.logger.Trace().Str("id", m.ID()).Str("title", m.Title()).Msg("Movie removed from catalog")
	})
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewInvalidArgumentError("app", "config", "must not be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets a preloaded catalog (useful for testing).
func WithCatalog(cat *catalogs.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}
