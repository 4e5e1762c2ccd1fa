// Package config loads tabshell settings from TOML, the environment and
// built-in defaults, and reloads them when the file changes.
package config

// Config represents the complete configuration for tabshell.
type Config struct {
	// DefaultURL is opened by new tabs and by the tab that replaces the last closed one.
	DefaultURL string `mapstructure:"default_url" toml:"default_url" json:"default_url" jsonschema:"format=uri,default=https://www.google.com/"`
	// ViewCache bounds how many live rendering views are kept.
	ViewCache ViewCacheConfig `mapstructure:"view_cache" toml:"view_cache" json:"view_cache"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
	// Session controls saving and restoring the tab strip.
	Session  SessionConfig  `mapstructure:"session" toml:"session" json:"session"`
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// WebView holds WebKit settings applied to every new view.
	WebView WebViewConfig `mapstructure:"webview" toml:"webview" json:"webview"`
}

// ViewCacheConfig configures the LRU view cache.
type ViewCacheConfig struct {
	// Capacity is the number of tabs that keep a live view. Evicted tabs reload when reselected.
	Capacity int `mapstructure:"capacity" toml:"capacity" json:"capacity" jsonschema:"minimum=1,maximum=64,default=4"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// SessionConfig controls session persistence.
type SessionConfig struct {
	// AutoRestore reopens the tabs of the previous run on launch.
	AutoRestore bool `mapstructure:"auto_restore" toml:"auto_restore" json:"auto_restore"`
	// SnapshotIntervalMs is the quiet period before tab changes are written to disk.
	SnapshotIntervalMs int `mapstructure:"snapshot_interval_ms" toml:"snapshot_interval_ms" json:"snapshot_interval_ms" jsonschema:"minimum=100"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/tabshell/tabshell.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// WebViewConfig maps to WebKit settings.
type WebViewConfig struct {
	EnableJavaScript bool    `mapstructure:"enable_javascript" toml:"enable_javascript" json:"enable_javascript"`
	EnableDOMStorage bool    `mapstructure:"enable_dom_storage" toml:"enable_dom_storage" json:"enable_dom_storage"`
	EnableZoom       bool    `mapstructure:"enable_zoom" toml:"enable_zoom" json:"enable_zoom"`
	DefaultZoom      float64 `mapstructure:"default_zoom" toml:"default_zoom" json:"default_zoom" jsonschema:"minimum=0.25,maximum=5"`
	EnableDevTools   bool    `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}
