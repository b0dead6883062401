// Package cli wires the tabicon command line application.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bnema/tabicon/internal/application/usecase"
	"github.com/bnema/tabicon/internal/cli/styles"
	"github.com/bnema/tabicon/internal/domain/build"
	"github.com/bnema/tabicon/internal/domain/repository"
	"github.com/bnema/tabicon/internal/infrastructure/config"
	"github.com/bnema/tabicon/internal/infrastructure/favicon"
	"github.com/bnema/tabicon/internal/infrastructure/metrics"
	"github.com/bnema/tabicon/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabicon/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	SessionID     string

	db      *sql.DB
	Index   repository.FaviconIndexRepository
	Cache   *favicon.Cache
	Metrics *metrics.FaviconMetrics
	Fetcher *favicon.Fetcher

	// Use cases
	Tabs    *usecase.ManageTabFaviconsUseCase
	PurgeUC *usecase.PurgeFaviconsUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration from configDir (the XDG config directory when
// empty) and creates the application with all dependencies.
func NewApp(configDir string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configDir == "" {
		mgr, err = config.NewManager()
		if err != nil {
			return nil, err
		}
	} else {
		mgr = config.NewManagerForDir(configDir)
	}

	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	app, err := NewAppFromConfig(mgr.Get())
	if err != nil {
		return nil, err
	}
	app.ConfigManager = mgr

	mgr.SetLogger(*logging.FromContext(app.ctx))
	mgr.OnConfigChange(app.applyConfig)
	return app, nil
}

// NewAppFromConfig creates the application from an already loaded configuration.
func NewAppFromConfig(cfg *config.Config) (*App, error) {
	logger, logCleanup := logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   cfg.Logging.Compress,
		},
	)

	sessionID := logging.GenerateSessionID()
	logger = logger.With().Str("session", logging.ShortSessionID(sessionID)).Logger()
	ctx := logging.WithContext(context.Background(), logger)

	filter, err := favicon.ParseFilter(cfg.Favicon.Filter)
	if err != nil {
		logCleanup()
		return nil, err
	}
	fit, err := favicon.ParseFit(cfg.Favicon.Fit)
	if err != nil {
		logCleanup()
		return nil, err
	}

	db, err := sqlite.OpenIndex(ctx, cfg.Database.Path)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open database: %w", err)
	}

	index := sqlite.NewFaviconIndexRepository(db)
	cache := favicon.NewCache(cfg.Favicon.CacheDir)
	faviconMetrics := metrics.NewFaviconMetrics()

	tabs := usecase.NewManageTabFaviconsUseCase(
		favicon.NewScaler(filter, fit),
		usecase.TabFaviconOptions{
			IdealSize: cfg.Favicon.IdealSizePx(),
			Fallback:  cache,
			Store:     cache,
			Index:     index,
			Metrics:   faviconMetrics,
		},
	)

	logger.Debug().
		Str("db_path", cfg.Database.Path).
		Str("cache_dir", cfg.Favicon.CacheDir).
		Int("ideal_size", cfg.Favicon.IdealSizePx()).
		Msg("app initialized")

	return &App{
		Config:     cfg,
		Theme:      styles.NewTheme(),
		SessionID:  sessionID,
		db:         db,
		Index:      index,
		Cache:      cache,
		Metrics:    faviconMetrics,
		Fetcher:    favicon.NewFetcher(),
		Tabs:       tabs,
		PurgeUC:    usecase.NewPurgeFaviconsUseCase(index, cache),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// WatchConfig reloads the configuration on file changes for the rest of the run.
func (a *App) WatchConfig() error {
	if a.ConfigManager == nil {
		return nil
	}
	return a.ConfigManager.Watch()
}

// applyConfig picks up a reloaded configuration. The new ideal size only
// applies to tabs opened afterwards.
func (a *App) applyConfig(cfg *config.Config) {
	a.Tabs.SetIdealSize(cfg.Favicon.IdealSizePx())
	logging.FromContext(a.ctx).Info().
		Int("ideal_size", cfg.Favicon.IdealSizePx()).
		Msg("config reloaded")
}

// NewReplayer creates a replayer bound to the app's tabs and fetcher.
func (a *App) NewReplayer() *Replayer {
	return NewReplayer(a.Tabs, a.Fetcher)
}

// Close releases all resources.
func (a *App) Close() error {
	if a.Tabs != nil {
		a.Tabs.CloseAll(a.ctx)
	}
	if a.Cache != nil {
		a.Cache.Close()
	}
	var err error
	if a.db != nil {
		err = sqlite.Close(a.db)
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
