package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ports"
)

// SQLiteRepository implements ports.SchemeRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.SchemeRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the schemer logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("SCHEMER_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&SchemeModel{}, &SchemeBindingModel{}, &SchemeMetaModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			if closeErr := sqlDB.Close(); closeErr != nil {
				logging.Logger.Warn("Failed to close database after migration error", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to migrate scheme schema: %w", err)
		}
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadSchemes implements SchemeReader.LoadSchemes
func (r *SQLiteRepository) LoadSchemes(ctx context.Context) (*domain.SchemeCollection, error) {
	db := r.db.WithContext(ctx)

	var meta SchemeMetaModel
	version := ""
	err := db.Where(&SchemeMetaModel{Key: metaKeyVersion}).First(&meta).Error
	switch {
	case err == nil:
		version = meta.Value
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load scheme metadata: %w", err)
	}

	var schemes []SchemeModel
	if err := db.Order("name").Find(&schemes).Error; err != nil {
		return nil, fmt.Errorf("failed to load schemes: %w", err)
	}

	var bindings []SchemeBindingModel
	if err := db.Order("scheme_name, position").Find(&bindings).Error; err != nil {
		return nil, fmt.Errorf("failed to load scheme bindings: %w", err)
	}

	byScheme := make(map[string][]SchemeBindingModel, len(schemes))
	for _, b := range bindings {
		byScheme[b.SchemeName] = append(byScheme[b.SchemeName], b)
	}

	collection := domain.NewSchemeCollection(version)
	for _, s := range schemes {
		collection.Schemes[s.Name] = bindingModelsToScheme(s.Name, byScheme[s.Name])
	}

	logging.Logger.Debug("Loaded schemes from database",
		"version", version,
		"count", len(collection.Schemes))
	return collection, nil
}

// SaveSchemes implements SchemeWriter.SaveSchemes.
// The stored collection is replaced in a single transaction.
func (r *SQLiteRepository) SaveSchemes(ctx context.Context, collection *domain.SchemeCollection) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&SchemeBindingModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear scheme bindings: %w", err)
			}
			if err := tx.Where("1 = 1").Delete(&SchemeModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear schemes: %w", err)
			}

			meta := SchemeMetaModel{Key: metaKeyVersion, Value: collection.Version}
			if err := tx.Save(&meta).Error; err != nil {
				return fmt.Errorf("failed to save scheme metadata: %w", err)
			}

			for name, scheme := range collection.Schemes {
				if err := tx.Create(&SchemeModel{Name: name}).Error; err != nil {
					return fmt.Errorf("failed to save scheme %s: %w", name, err)
				}

				bindings := schemeToBindingModels(name, scheme)
				if len(bindings) == 0 {
					continue
				}
				if err := tx.Create(&bindings).Error; err != nil {
					return fmt.Errorf("failed to save bindings for %s: %w", name, err)
				}
			}

			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
