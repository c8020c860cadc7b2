package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultMaxLogFiles is the log rotation limit used when nothing else is configured
const DefaultMaxLogFiles = 1000

// Settings represents the structure of settings.json
type Settings struct {
	Debug       *bool              `json:"debug,omitempty"`
	MaxLogFiles *int               `json:"max_log_files,omitempty"`
	Shortcuts   *ShortcutsSettings `json:"shortcuts,omitempty"`
}

// ShortcutsSettings is the "shortcuts" record of settings.json
type ShortcutsSettings struct {
	CurrentScheme string `json:"currentScheme,omitempty"`
}

// CurrentScheme returns the stored active scheme name, or "" when none is stored
func (s *Settings) CurrentScheme() string {
	if s == nil || s.Shortcuts == nil {
		return ""
	}
	return s.Shortcuts.CurrentScheme
}

// LoadSettings loads settings from the default settings path.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to the default settings path
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo saves settings to path, creating its directory if needed
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
