package webkit

import (
	"context"
	"sync"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/tabshell/internal/application/port"
)

// View adapts a WebKitGTK WebView to port.ViewResource.
// All methods must be called from the GTK main thread.
type View struct {
	mu        sync.RWMutex
	view      *webkit.WebView
	callbacks *port.ViewCallbacks
	handlers  []coreglib.SignalHandle
	destroyed bool
	logger    zerolog.Logger
}

var _ port.ViewResource = (*View)(nil)

func newView(wv *webkit.WebView, logger zerolog.Logger) *View {
	v := &View{
		view:   wv,
		logger: logger,
	}
	v.connectSignals()
	return v
}

func (v *View) connectSignals() {
	v.handlers = append(v.handlers,
		v.view.ConnectLoadChanged(func(event webkit.LoadEvent) {
			cb := v.currentCallbacks()
			if cb == nil {
				return
			}
			uri := v.view.URI()
			switch event {
			case webkit.LoadStarted, webkit.LoadRedirected:
				if cb.OnNavigationStarted != nil {
					cb.OnNavigationStarted(uri)
				}
			case webkit.LoadFinished:
				if cb.OnNavigationFinished != nil {
					cb.OnNavigationFinished(uri)
				}
			}
		}),
		v.view.ConnectLoadFailed(func(_ webkit.LoadEvent, failingURI string, err error) bool {
			if !IsCancelledLoad(err) {
				v.logger.Warn().Err(err).Str("url", failingURI).Msg("load failed")
			}
			return false
		}),
		v.view.Connect("notify::title", func() {
			cb := v.currentCallbacks()
			if cb == nil || cb.OnTitleChanged == nil {
				return
			}
			cb.OnTitleChanged(v.view.Title())
		}),
	)
}

func (v *View) currentCallbacks() *port.ViewCallbacks {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return nil
	}
	return v.callbacks
}

// Widget returns the GTK widget to place in a container, or nil once destroyed.
func (v *View) Widget() gtk.Widgetter {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return nil
	}
	return v.view
}

func (v *View) LoadURI(_ context.Context, uri string) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return ErrWebViewDestroyed
	}
	if uri == "" {
		return ErrInvalidURL
	}
	v.view.LoadURI(uri)
	return nil
}

func (v *View) URI() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return ""
	}
	return v.view.URI()
}

func (v *View) CanGoBack() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.destroyed && v.view.CanGoBack()
}

func (v *View) CanGoForward() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return !v.destroyed && v.view.CanGoForward()
}

func (v *View) GoBack(_ context.Context) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return ErrWebViewDestroyed
	}
	v.view.GoBack()
	return nil
}

func (v *View) GoForward(_ context.Context) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return ErrWebViewDestroyed
	}
	v.view.GoForward()
	return nil
}

func (v *View) Reload(_ context.Context) error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return ErrWebViewDestroyed
	}
	v.view.Reload()
	return nil
}

// SetCallbacks replaces the engine callbacks. Passing nil silences them.
func (v *View) SetCallbacks(cb *port.ViewCallbacks) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.callbacks = cb
}

// Detach removes the widget from its container without destroying it.
func (v *View) Detach() {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.destroyed {
		return
	}
	v.detachLocked()
}

func (v *View) detachLocked() {
	parent := v.view.Parent()
	if parent == nil {
		return
	}
	if box, ok := parent.(*gtk.Box); ok {
		box.Remove(v.view)
		return
	}
	v.view.Unparent()
}

// Destroy disconnects signals, detaches the widget and terminates the web
// process. Subsequent calls are no-ops.
func (v *View) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.destroyed = true
	v.callbacks = nil

	for _, h := range v.handlers {
		v.view.HandlerDisconnect(h)
	}
	v.handlers = nil

	v.detachLocked()
	v.view.TerminateWebProcess()
	v.logger.Debug().Msg("webview destroyed")
}

func (v *View) IsDestroyed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.destroyed
}
