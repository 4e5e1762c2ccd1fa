package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/tabs"
	"github.com/bnema/tabshell/internal/application/usecase"
	"github.com/bnema/tabshell/internal/domain/build"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/infrastructure/snapshot"
	"github.com/bnema/tabshell/internal/infrastructure/webkit"
	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui"
	"github.com/bnema/tabshell/internal/ui/mainloop"
)

// GUIOptions configures the browse command.
type GUIOptions struct {
	InitialURL string
	Build      build.Info
}

// RunGUI runs the graphical shell and returns the process exit code.
func RunGUI(opts GUIOptions) int {
	runtime.LockOSThread()
	timer := NewStartupTimer()

	cfgManager, err := config.NewManager()
	if err == nil {
		err = cfgManager.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	cfg := cfgManager.Get()
	timer.Mark("config")

	ctx := startupContext(cfg, opts.Build)
	log := logging.FromContext(ctx)
	defer logging.RecoverAndLog(ctx)
	logCoreDumpLimits(ctx)

	initResult, err := RunParallelInit(ctx, InitInput{
		Config:     cfg,
		SchemaPath: cfgManager.Dirs().SchemaFile(),
	})
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		return 1
	}
	defer func() {
		if cerr := initResult.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("failed to close database")
		}
	}()
	timer.MarkDuration("parallel_init", initResult.Duration)

	manager := tabs.NewManager(ctx, tabs.Config{
		DefaultURL:    cfg.DefaultURL,
		CacheCapacity: cfg.ViewCache.Capacity,
	})
	if initResult.Session != nil {
		if err := manager.Restore(ctx, initResult.Session); err != nil {
			log.Warn().Err(err).Msg("session restore fell back to default tab")
		}
	}
	timer.Mark("tabs")

	snapshots := snapshot.NewService(
		usecase.NewSnapshotSessionUseCase(initResult.SessionRepo),
		manager,
		cfg.Session.SnapshotIntervalMs,
	)
	snapshots.Start(ctx)

	watchConfig(ctx, cfgManager, manager)

	app, err := ui.New(&ui.Dependencies{
		Ctx:        ctx,
		Manager:    manager,
		Factory:    webkit.NewFactory(cfg.WebView),
		InitialURL: opts.InitialURL,
		OnShutdown: func(ctx context.Context) {
			if err := snapshots.Stop(ctx); err != nil {
				logging.FromContext(ctx).Error().Err(err).Msg("final session snapshot failed")
			}
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")
	timer.Log(ctx, zerolog.DebugLevel)

	setupSignalHandler(ctx, app)

	return app.Run(os.Args[:1])
}

func startupContext(cfg *config.Config, info build.Info) context.Context {
	logging.SetGlobalLevel(cfg.Logging.Level)
	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info().
		Str("version", info.Version).
		Str("commit", info.Commit).
		Msg("starting tabshell")
	return logging.WithContext(context.Background(), logger)
}

// watchConfig applies live config edits: view cache capacity and log level.
// Other keys take effect on the next launch.
func watchConfig(ctx context.Context, cfgManager *config.Manager, manager *tabs.Manager) {
	log := logging.FromContext(ctx)

	cfgManager.OnConfigChange(func(next *config.Config) {
		mainloop.PostIdle(func() {
			manager.SetCacheCapacity(ctx, next.ViewCache.Capacity)
			logging.SetGlobalLevel(next.Logging.Level)
			log.Info().
				Int("cache_capacity", next.ViewCache.Capacity).
				Str("log_level", next.Logging.Level).
				Msg("configuration reloaded")
		})
	})

	if err := cfgManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
