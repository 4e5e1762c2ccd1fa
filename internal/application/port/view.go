// Package port defines application-layer interfaces for external capabilities.
// Ports abstract infrastructure concerns so the tab manager and presenter stay
// independent of WebKit and GTK.
package port

import (
	"context"
)

//go:generate mockery --name=ViewResource --output=mocks --outpkg=mocks --with-expecter

// ViewCallbacks defines handlers for page lifecycle events.
// Implementations invoke these on the GTK main thread.
type ViewCallbacks struct {
	// OnNavigationStarted is called when a navigation begins, with the target URI.
	OnNavigationStarted func(uri string)
	// OnNavigationFinished is called when the page has fully loaded.
	OnNavigationFinished func(uri string)
	// OnTitleChanged is called when the document title changes.
	OnTitleChanged func(title string)
}

// ViewResource is a native rendering view. It is expensive to create, shows
// content for at most one tab at a time, and must be explicitly destroyed.
type ViewResource interface {
	// LoadURI navigates to the specified URI.
	LoadURI(ctx context.Context, uri string) error

	// URI returns the currently loaded URI.
	URI() string

	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool

	// CanGoForward returns true if forward navigation is available.
	CanGoForward() bool

	// GoBack navigates back in history.
	GoBack(ctx context.Context) error

	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error

	// Reload reloads the current page.
	Reload(ctx context.Context) error

	// SetCallbacks registers lifecycle handlers. Pass nil to clear them.
	SetCallbacks(callbacks *ViewCallbacks)

	// Detach removes the view from whatever container currently displays it.
	// The view stays alive and can be attached again.
	Detach()

	// Destroy releases all engine resources. The view is unusable afterwards.
	Destroy()

	// IsDestroyed returns true once Destroy has run.
	IsDestroyed() bool
}

// ViewFactory creates a view for a tab. The presentation layer supplies it on
// each request so the manager never imports the engine.
type ViewFactory func(ctx context.Context) (ViewResource, error)
