package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "schemer"

// File names inside the schemer directories
const (
	ConfigFileName    = "config.toml"
	DBFileName        = "schemes.db"
	SettingsFileName  = "settings.json"
	ShortcutsFileName = "shortcuts.conf"
)

// GetSchemerHome returns $SCHEMER_HOME, or "" when it is not set.
// When set, every schemer file lives directly under it.
func GetSchemerHome() string {
	home := os.Getenv("SCHEMER_HOME")
	if home == "" {
		return ""
	}
	return ExpandPath(home)
}

// GetConfigDir returns $SCHEMER_HOME or $XDG_CONFIG_HOME/schemer
func GetConfigDir() string {
	if home := GetSchemerHome(); home != "" {
		return home
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetDataDir returns $SCHEMER_HOME or $XDG_DATA_HOME/schemer
func GetDataDir() string {
	if home := GetSchemerHome(); home != "" {
		return home
	}
	return filepath.Join(xdg.DataHome, appName)
}

// GetLogDir returns $SCHEMER_HOME/logs or $XDG_STATE_HOME/schemer
func GetLogDir() string {
	if home := GetSchemerHome(); home != "" {
		return filepath.Join(home, "logs")
	}
	return filepath.Join(xdg.StateHome, appName)
}

// GetSettingsPath returns the settings.json location
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), SettingsFileName)
}

// GetConfigPath returns the config.toml location
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), ConfigFileName)
}

// GetShortcutsPath returns the default scheme groups file location
func GetShortcutsPath() string {
	return filepath.Join(GetDataDir(), ShortcutsFileName)
}

// GetDBPath returns the default SQLite database location
func GetDBPath() string {
	return filepath.Join(GetDataDir(), DBFileName)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
