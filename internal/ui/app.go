package ui

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/tabshell/internal/logging"
	"github.com/bnema/tabshell/internal/ui/mainloop"
	"github.com/bnema/tabshell/internal/ui/presenter"
	"github.com/bnema/tabshell/internal/ui/window"
)

const appID = "dev.bnema.tabshell"

// App owns the GTK application and the single window session.
type App struct {
	deps      *Dependencies
	gtkApp    *gtk.Application
	window    *window.MainWindow
	presenter *presenter.Presenter
}

// New creates an App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(args []string) int {
	ctx := logging.WithComponent(a.deps.Ctx, "app")
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(appID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.window != nil {
		a.window.Present()
		return
	}

	win, err := window.New(ctx, a.gtkApp)
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.window = win

	a.presenter = presenter.New(ctx, a.deps.Manager, a.deps.Factory, win, mainloop.PostIdle)
	win.SetIntents(a.presenter)
	a.presenter.Start()

	if a.deps.InitialURL != "" {
		if err := a.presenter.OpenURL(a.deps.InitialURL); err != nil {
			log.Warn().Err(err).Str("url", a.deps.InitialURL).Msg("initial url ignored")
		}
	}

	win.Present()
	log.Debug().Msg("main window presented")
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	if a.presenter != nil {
		a.presenter.Stop()
	}
	if a.deps.OnShutdown != nil {
		a.deps.OnShutdown(ctx)
	}
	a.deps.Manager.Teardown(ctx)
}

// Quit stops the GTK application from any goroutine.
func (a *App) Quit() {
	mainloop.PostIdle(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
