// Package ui provides the GTK4 presentation layer for tabshell.
package ui

import (
	"context"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/tabs"
)

// Dependencies holds everything the UI layer needs. It is built once at
// startup by the browse command.
type Dependencies struct {
	Ctx     context.Context
	Manager *tabs.Manager
	Factory port.ViewFactory

	// InitialURL is opened in a new tab after the window appears (optional).
	InitialURL string

	// OnShutdown runs on the main thread before the manager is torn down (optional).
	OnShutdown func(ctx context.Context)
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Manager == nil {
		return ErrMissingDependency("Manager")
	}
	if d.Factory == nil {
		return ErrMissingDependency("Factory")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
