package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/renato0307/schemer/internal/config"
	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ports"
)

const (
	shortcutsKey     = "shortcuts"
	currentSchemeKey = "currentScheme"
)

// Store keeps the active scheme name in settings.json under
// shortcuts.currentScheme. Writes leave every other setting untouched,
// including ones this program does not know about.
type Store struct {
	path string
}

// Compile-time check
var _ ports.CurrentSchemeStore = (*Store)(nil)

// NewStore creates a store for the settings file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// CurrentScheme implements ports.CurrentSchemeStore
func (s *Store) CurrentScheme() (string, error) {
	settings, err := config.LoadSettingsFrom(s.path)
	if err != nil {
		return "", err
	}
	return settings.CurrentScheme(), nil
}

// SetCurrentScheme implements ports.CurrentSchemeStore
func (s *Store) SetCurrentScheme(name string) error {
	doc, err := s.readDocument()
	if err != nil {
		return err
	}

	shortcuts := map[string]json.RawMessage{}
	if raw, ok := doc[shortcutsKey]; ok {
		if err := json.Unmarshal(raw, &shortcuts); err != nil {
			return fmt.Errorf("invalid settings.json: %w", err)
		}
	}
	if shortcuts == nil {
		shortcuts = map[string]json.RawMessage{}
	}

	value, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("failed to marshal scheme name: %w", err)
	}
	shortcuts[currentSchemeKey] = value

	if doc[shortcutsKey], err = json.Marshal(shortcuts); err != nil {
		return fmt.Errorf("failed to marshal shortcuts settings: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	logging.Logger.Debug("Stored current scheme", "path", s.path, "scheme", name)
	return nil
}

func (s *Store) readDocument() (map[string]json.RawMessage, error) {
	doc := map[string]json.RawMessage{}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if doc == nil {
		doc = map[string]json.RawMessage{}
	}
	return doc, nil
}
