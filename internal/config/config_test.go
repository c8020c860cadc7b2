package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadFrom_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SCHEMER_HOME", home)

	cfg, err := LoadFrom(filepath.Join(home, "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, StorageINI, cfg.Storage)
	assert.Equal(t, filepath.Join(home, ShortcutsFileName), cfg.ShortcutsFile)
	assert.Equal(t, filepath.Join(home, DBFileName), cfg.DBPath)
	assert.False(t, cfg.PersistFactoryScheme)
}

func TestLoadFrom_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SCHEMER_HOME", home)

	path := filepath.Join(home, ConfigFileName)
	writeFile(t, path, `
storage = "sqlite"
db_path = "/tmp/other.db"
persist_factory_scheme = true
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.True(t, cfg.PersistFactoryScheme)
	assert.Equal(t, filepath.Join(home, ShortcutsFileName), cfg.ShortcutsFile)
}

func TestLoadFrom_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCHEMER_HOME", dir)

	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	writeFile(t, first, `shortcuts_file = "/a/shortcuts.conf"`)
	writeFile(t, second, `shortcuts_file = "/b/shortcuts.conf"`)

	cfg, err := LoadFrom(first, second)
	require.NoError(t, err)
	assert.Equal(t, "/b/shortcuts.conf", cfg.ShortcutsFile)
}

func TestLoadFrom_UnknownStorage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, `storage = "redis"`)

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	writeFile(t, path, `storage = `)

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestPaths_SchemerHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SCHEMER_HOME", home)

	assert.Equal(t, filepath.Join(home, SettingsFileName), GetSettingsPath())
	assert.Equal(t, filepath.Join(home, ConfigFileName), GetConfigPath())
	assert.Equal(t, filepath.Join(home, ShortcutsFileName), GetShortcutsPath())
	assert.Equal(t, filepath.Join(home, "logs"), GetLogDir())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde only", "~", homeDir},
		{"tilde prefix", "~/schemes", filepath.Join(homeDir, "schemes")},
		{"absolute", "/etc/schemer", "/etc/schemer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
