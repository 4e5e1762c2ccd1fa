package webkit

import (
	"context"
	"fmt"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/infrastructure/config"
	"github.com/bnema/tabshell/internal/logging"
)

// NewFactory returns a port.ViewFactory that builds WebKit views with the
// given settings. The factory must be invoked on the GTK main thread.
func NewFactory(cfg config.WebViewConfig) port.ViewFactory {
	return func(ctx context.Context) (port.ViewResource, error) {
		log := logging.FromContext(logging.WithComponent(ctx, "webkit"))

		wv := webkit.NewWebView()
		if wv == nil {
			return nil, ErrWebViewNotInitialized
		}
		if err := applySettings(wv, cfg); err != nil {
			return nil, err
		}
		wv.SetHExpand(true)
		wv.SetVExpand(true)

		log.Debug().
			Bool("javascript", cfg.EnableJavaScript).
			Float64("zoom", wv.ZoomLevel()).
			Msg("webview created")

		return newView(wv, *log), nil
	}
}

func applySettings(wv *webkit.WebView, cfg config.WebViewConfig) error {
	settings := wv.Settings()
	if settings == nil {
		return fmt.Errorf("webkit: failed to get settings")
	}

	settings.SetEnableJavascript(cfg.EnableJavaScript)
	settings.SetEnableHtml5LocalStorage(cfg.EnableDOMStorage)
	settings.SetEnableDeveloperExtras(cfg.EnableDevTools)
	settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)

	if cfg.EnableZoom && cfg.DefaultZoom > 0 {
		wv.SetZoomLevel(cfg.DefaultZoom)
	}
	return nil
}
