package config

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	maxViewCacheCapacity  = 64
	minSnapshotIntervalMs = 100
	minDefaultZoom        = 0.25
	maxDefaultZoom        = 5.0
)

// validateConfig reports every invalid value, naming the offending key.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDefaultURL(config)...)
	validationErrors = append(validationErrors, validateViewCache(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)
	validationErrors = append(validationErrors, validateWebView(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateDefaultURL(config *Config) []string {
	if config.DefaultURL == "" {
		return []string{"default_url cannot be empty"}
	}
	u, err := url.Parse(config.DefaultURL)
	if err != nil {
		return []string{fmt.Sprintf("default_url is not a valid URL: %v", err)}
	}
	switch u.Scheme {
	case "http", "https", "file", "about":
	default:
		return []string{fmt.Sprintf("default_url must use http, https, file or about (got: %q)", u.Scheme)}
	}
	return nil
}

func validateViewCache(config *Config) []string {
	if config.ViewCache.Capacity < 1 || config.ViewCache.Capacity > maxViewCacheCapacity {
		return []string{fmt.Sprintf("view_cache.capacity must be between 1 and %d (got: %d)",
			maxViewCacheCapacity, config.ViewCache.Capacity)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "console", "text", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	return validationErrors
}

func validateSession(config *Config) []string {
	if config.Session.SnapshotIntervalMs < minSnapshotIntervalMs {
		return []string{fmt.Sprintf("session.snapshot_interval_ms must be at least %d", minSnapshotIntervalMs)}
	}
	return nil
}

func validateWebView(config *Config) []string {
	if config.WebView.DefaultZoom < minDefaultZoom || config.WebView.DefaultZoom > maxDefaultZoom {
		return []string{fmt.Sprintf("webview.default_zoom must be between %.2f and %.1f", minDefaultZoom, maxDefaultZoom)}
	}
	return nil
}
