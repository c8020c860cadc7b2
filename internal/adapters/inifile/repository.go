package inifile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ports"
)

// Repository stores scheme groups in a single INI file
type Repository struct {
	path string
}

// Compile-time check
var _ ports.SchemeRepository = (*Repository)(nil)

// NewRepository creates a repository for the file at path
func NewRepository(path string) *Repository {
	return &Repository{path: path}
}

// Path returns the file location
func (r *Repository) Path() string {
	return r.path
}

// LoadSchemes reads the file; a missing file is an empty collection
func (r *Repository) LoadSchemes(ctx context.Context) (*domain.SchemeCollection, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger.Debug("Shortcuts file not found, starting empty", "path", r.path)
			return domain.NewSchemeCollection(""), nil
		}
		return nil, fmt.Errorf("failed to read shortcuts file: %w", err)
	}

	collection, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Loaded schemes",
		"path", r.path,
		"version", collection.Version,
		"count", len(collection.Schemes))
	return collection, nil
}

// SaveSchemes replaces the file contents through a temp file and rename
func (r *Repository) SaveSchemes(ctx context.Context, collection *domain.SchemeCollection) error {
	data, err := Marshal(collection)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create shortcuts directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".shortcuts-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write shortcuts file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close shortcuts file: %w", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace shortcuts file: %w", err)
	}

	logging.Logger.Debug("Saved schemes", "path", r.path, "count", len(collection.Schemes))
	return nil
}

// Close is a no-op; the file is only open during load and save
func (r *Repository) Close() error {
	return nil
}
