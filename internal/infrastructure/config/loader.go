package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. TABSHELL_VIEW_CACHE_CAPACITY.
const EnvPrefix = "TABSHELL"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	dirs      *XDGDirs
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager for the standard XDG locations.
func NewManager() (*Manager, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDirs(dirs)
}

// NewManagerWithDirs creates a configuration manager rooted at dirs.
func NewManagerWithDirs(dirs *XDGDirs) (*Manager, error) {
	v := viper.New()

	v.SetConfigName(strings.TrimSuffix(configName, ".toml"))
	v.SetConfigType("toml")
	v.AddConfigPath(dirs.ConfigHome)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return &Manager{
		dirs:  dirs,
		viper: v,
	}, nil
}

// Load reads the config file, creating it with defaults on first run, then
// applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.dirs.Ensure(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.dirs.ConfigFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf("failed to create default config at %s: %w", m.dirs.ConfigFile(), createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals viper state into a Config, fills derived values and validates it.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(), err)
	}

	if config.Database.Path == "" {
		config.Database.Path = m.dirs.DatabaseFile()
	}
	config.DefaultURL = strings.TrimSpace(config.DefaultURL)
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.dirs.ConfigFile()
}

// Dirs returns the directories this manager reads and writes.
func (m *Manager) Dirs() *XDGDirs {
	return m.dirs
}

// createDefaultConfig writes the defaults as TOML plus the JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dirs.ConfigHome, dirPerm); err != nil {
		return err
	}

	data, err := EncodeTOML(DefaultConfig())
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.dirs.ConfigFile(), data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return WriteSchemaFile(m.dirs.SchemaFile())
}

// EncodeTOML renders cfg as TOML in field definition order.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// setDefaults registers every key with viper so environment overrides apply
// even when the file omits them.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("default_url", defaults.DefaultURL)
	m.viper.SetDefault("view_cache.capacity", defaults.ViewCache.Capacity)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("session.auto_restore", defaults.Session.AutoRestore)
	m.viper.SetDefault("session.snapshot_interval_ms", defaults.Session.SnapshotIntervalMs)
	m.viper.SetDefault("database.path", defaults.Database.Path)
	m.viper.SetDefault("webview.enable_javascript", defaults.WebView.EnableJavaScript)
	m.viper.SetDefault("webview.enable_dom_storage", defaults.WebView.EnableDOMStorage)
	m.viper.SetDefault("webview.enable_zoom", defaults.WebView.EnableZoom)
	m.viper.SetDefault("webview.default_zoom", defaults.WebView.DefaultZoom)
	m.viper.SetDefault("webview.enable_devtools", defaults.WebView.EnableDevTools)
}
