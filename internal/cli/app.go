// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"os"

	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/cli/styles"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/domain/repository"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabshell/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Dirs       *config.XDGDirs
	Theme      *styles.Theme
	BuildInfo  build.Info

	ctx    context.Context
	lazyDB *sqlite.LazyDB
}

// NewApp creates the CLI application. The database is opened lazily so
// commands that only read config never touch it.
func NewApp() (*App, error) {
	cfg, configFile, dirs := loadConfig()

	logLevel := cfg.Logging.Level
	if envLevel := os.Getenv("TABSHELL_LOG_LEVEL"); envLevel != "" {
		logLevel = envLevel
	}
	// CLI output goes to stdout; keep the logger quiet unless asked otherwise.
	if logLevel == "" || logLevel == "info" {
		logLevel = "warn"
	}
	logger := logging.NewFromConfigValues(logLevel, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	dbFile := cfg.Database.Path
	if dbFile == "" && dirs != nil {
		dbFile = dirs.DatabaseFile()
	}
	if dirs != nil {
		if err := dirs.Ensure(); err != nil {
			return nil, err
		}
	}

	return &App{
		Config:     cfg,
		ConfigFile: configFile,
		Dirs:       dirs,
		Theme:      styles.NewTheme(),
		ctx:        ctx,
		lazyDB:     sqlite.NewLazyDB(dbFile),
	}, nil
}

// SessionRepo opens the database if needed and returns the session repository.
func (a *App) SessionRepo(ctx context.Context) (repository.SessionStateRepository, error) {
	db, err := a.lazyDB.DB(ctx)
	if err != nil {
		return nil, err
	}
	return sqlite.NewSessionStateRepository(db), nil
}

// RestoreUseCase returns the use case that reads the saved session.
func (a *App) RestoreUseCase(ctx context.Context) (*usecase.RestoreSessionUseCase, error) {
	repo, err := a.SessionRepo(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewRestoreSessionUseCase(repo), nil
}

// ClearUseCase returns the use case that deletes the saved session.
func (a *App) ClearUseCase(ctx context.Context) (*usecase.ClearSessionUseCase, error) {
	repo, err := a.SessionRepo(ctx)
	if err != nil {
		return nil, err
	}
	return usecase.NewClearSessionUseCase(repo), nil
}

// DatabaseFile returns the path of the session database.
func (a *App) DatabaseFile() string {
	return a.lazyDB.Path()
}

// Close releases all resources.
func (a *App) Close() error {
	return a.lazyDB.Close()
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// the defaults when the file is missing or invalid.
func loadConfig() (*config.Config, string, *config.XDGDirs) {
	mgr, err := config.NewManager()
	if err != nil {
		return config.DefaultConfig(), "", nil
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig(), mgr.ConfigFile(), mgr.Dirs()
	}
	return mgr.Get(), mgr.ConfigFile(), mgr.Dirs()
}
