package cmd

import (
	"fmt"

	"github.com/renato0307/schemer/internal/adapters/inifile"
	adaptersettings "github.com/renato0307/schemer/internal/adapters/settings"
	adapterstorage "github.com/renato0307/schemer/internal/adapters/storage"
	"github.com/renato0307/schemer/internal/config"
	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ports"
	"github.com/renato0307/schemer/internal/services"
	"github.com/renato0307/schemer/internal/version"
)

// Container holds all dependencies for the application
type Container struct {
	SchemeService *services.SchemeService

	// Internal - for cleanup only
	schemeRepo ports.SchemeRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config) (*Container, error) {
	schemeRepo, err := newSchemeRepository(cfg)
	if err != nil {
		return nil, err
	}

	currentStore := adaptersettings.NewStore(config.GetSettingsPath())

	schemeService := services.NewSchemeService(
		schemeRepo,
		schemeRepo,
		currentStore,
		version.Version,
		services.WithPersistFactoryScheme(cfg.PersistFactoryScheme),
	)

	return &Container{
		SchemeService: schemeService,
		schemeRepo:    schemeRepo,
	}, nil
}

func newSchemeRepository(cfg *config.Config) (ports.SchemeRepository, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		logging.Logger.Debug("Using SQLite scheme storage", "path", cfg.DBPath)
		return adapterstorage.NewSQLiteRepository(cfg.DBPath)
	case config.StorageINI, "":
		logging.Logger.Debug("Using INI scheme storage", "path", cfg.ShortcutsFile)
		return inifile.NewRepository(cfg.ShortcutsFile), nil
	default:
		return nil, fmt.Errorf("unknown storage backend '%s'", cfg.Storage)
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.schemeRepo != nil {
		return c.schemeRepo.Close()
	}
	return nil
}
