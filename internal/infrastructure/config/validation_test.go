package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "empty default url", mutate: func(c *Config) { c.DefaultURL = "" }, wantKey: "default_url"},
		{name: "unsupported scheme", mutate: func(c *Config) { c.DefaultURL = "ftp://example.com/" }, wantKey: "default_url"},
		{name: "about url", mutate: func(c *Config) { c.DefaultURL = "about:blank" }},
		{name: "zero capacity", mutate: func(c *Config) { c.ViewCache.Capacity = 0 }, wantKey: "view_cache.capacity"},
		{name: "huge capacity", mutate: func(c *Config) { c.ViewCache.Capacity = 65 }, wantKey: "view_cache.capacity"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantKey: "logging.format"},
		{name: "short interval", mutate: func(c *Config) { c.Session.SnapshotIntervalMs = 10 }, wantKey: "session.snapshot_interval_ms"},
		{name: "zoom out of range", mutate: func(c *Config) { c.WebView.DefaultZoom = 9 }, wantKey: "webview.default_zoom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantKey == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"view_cache"`)
	assert.Contains(t, s, `"snapshot_interval_ms"`)
	assert.Contains(t, s, "tabshell configuration")
}
