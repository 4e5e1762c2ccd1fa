package config

const (
	defaultURL                = "https://www.google.com/"
	defaultViewCacheCapacity  = 4
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
	defaultSnapshotIntervalMs = 2000
	defaultZoom               = 1.0
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultURL: defaultURL,
		ViewCache: ViewCacheConfig{
			Capacity: defaultViewCacheCapacity,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Session: SessionConfig{
			AutoRestore:        true,
			SnapshotIntervalMs: defaultSnapshotIntervalMs,
		},
		WebView: WebViewConfig{
			EnableJavaScript: true,
			EnableDOMStorage: true,
			EnableZoom:       true,
			DefaultZoom:      defaultZoom,
		},
	}
}
