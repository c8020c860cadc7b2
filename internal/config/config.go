package config

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backends for scheme groups
const (
	StorageINI    = "ini"
	StorageSQLite = "sqlite"
)

// Config is the engine configuration read from config.toml
type Config struct {
	Storage       string `koanf:"storage"`        // "ini" or "sqlite"
	ShortcutsFile string `koanf:"shortcuts_file"` // INI scheme groups file
	DBPath        string `koanf:"db_path"`        // SQLite database

	// Keep the factory scheme in the groups file instead of regenerating it
	PersistFactoryScheme bool `koanf:"persist_factory_scheme"`
}

// DefaultConfig returns the configuration used when no file sets a value
func DefaultConfig() *Config {
	return &Config{
		Storage:       StorageINI,
		ShortcutsFile: GetShortcutsPath(),
		DBPath:        GetDBPath(),
	}
}

// Load reads config.toml from the config directory and then from the
// working directory; later files win.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath(), ConfigFileName)
}

// LoadFrom reads the given TOML files in order, skipping missing ones
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ShortcutsFile = ExpandPath(cfg.ShortcutsFile)
	cfg.DBPath = ExpandPath(cfg.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the storage backend name
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageINI, StorageSQLite:
		return nil
	default:
		return fmt.Errorf("unknown storage backend '%s' (expected %s or %s)", c.Storage, StorageINI, StorageSQLite)
	}
}
