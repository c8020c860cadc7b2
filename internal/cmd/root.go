package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/schemer/internal/config"
	"github.com/renato0307/schemer/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Config      string           `help:"Path to config.toml (defaults to the schemer config directory)" type:"path"`
	Storage     string           `help:"Scheme storage backend: ini or sqlite (overrides config.toml)" env:"SCHEMER_STORAGE"`

	Actions   ActionsCmd   `cmd:"actions" help:"List the actions that can be bound"`
	Schemes   SchemesCmd   `cmd:"schemes" help:"Manage shortcut schemes (list, show, use, bind, copy, delete)"`
	Shortcuts ShortcutsCmd `cmd:"shortcuts" help:"Show the active shortcuts of an action"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta)"`
	Try       TryCmd       `cmd:"try" help:"Press keys and see which action they trigger"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetOutput redirects command output, stdout by default
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// Out returns the writer commands print to
func (c *CLI) Out() io.Writer {
	if c.out == nil {
		return os.Stdout
	}
	return c.out
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("SCHEMER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("SCHEMER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, config.GetLogDir(), c.MaxLogFiles)
	if err != nil {
		return err
	}

	// gorm's logger reads these, so they must be set before the container opens storage
	if c.Debug || c.DebugFile != "" {
		os.Setenv("SCHEMER_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("SCHEMER_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("SCHEMER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

func (c *CLI) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if c.Config != "" {
		cfg, err = config.LoadFrom(c.Config)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if c.Storage != "" {
		cfg.Storage = c.Storage
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logging.Logger.Debug("Engine config loaded",
		"storage", cfg.Storage,
		"shortcuts_file", cfg.ShortcutsFile,
		"db_path", cfg.DBPath,
		"persist_factory_scheme", cfg.PersistFactoryScheme)
	return cfg, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
