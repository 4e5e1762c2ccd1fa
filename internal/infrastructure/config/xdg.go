package config

import (
	"os"
	"path/filepath"
)

const (
	appName      = "tabshell"
	databaseName = "tabshell.sqlite"
	configName   = "config.toml"
	schemaName   = "config.schema.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns $XDG_CONFIG_HOME/tabshell, $XDG_DATA_HOME/tabshell and
// $XDG_STATE_HOME/tabshell with the usual fallbacks under $HOME.
// With ENV=dev everything lives in ./.dev/tabshell.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: devDir, DataHome: devDir, StateHome: devDir}, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigFile returns the config file path inside these directories.
func (d *XDGDirs) ConfigFile() string {
	return filepath.Join(d.ConfigHome, configName)
}

// SchemaFile returns the JSON schema path next to the config file.
func (d *XDGDirs) SchemaFile() string {
	return filepath.Join(d.ConfigHome, schemaName)
}

// DatabaseFile returns the default database path.
func (d *XDGDirs) DatabaseFile() string {
	return filepath.Join(d.DataHome, databaseName)
}

// Ensure creates the directories if they don't exist.
func (d *XDGDirs) Ensure() error {
	for _, dir := range []string{d.ConfigHome, d.DataHome, d.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigFile(), nil
}
