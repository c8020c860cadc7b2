package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.json"))

	name, err := store.CurrentScheme()
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestStore_SetThenGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "settings.json")
	store := NewStore(path)

	require.NoError(t, store.SetCurrentScheme("Custom"))

	name, err := store.CurrentScheme()
	require.NoError(t, err)
	assert.Equal(t, "Custom", name)
}

func TestStore_PreservesOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	original := `{
  "debug": true,
  "max_log_files": 7,
  "theme": {"accent": "141"},
  "shortcuts": {"currentScheme": "Old", "editorColumns": 3}
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	store := NewStore(path)
	require.NoError(t, store.SetCurrentScheme("New"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, true, doc["debug"])
	assert.Equal(t, float64(7), doc["max_log_files"])
	assert.Equal(t, map[string]any{"accent": "141"}, doc["theme"])
	assert.Equal(t, map[string]any{"currentScheme": "New", "editorColumns": float64(3)}, doc["shortcuts"])
}

func TestStore_NullShortcutsRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"debug": true, "shortcuts": null}`), 0644))
	store := NewStore(path)

	name, err := store.CurrentScheme()
	require.NoError(t, err)
	assert.Equal(t, "", name)

	require.NoError(t, store.SetCurrentScheme("Custom"))

	name, err = store.CurrentScheme()
	require.NoError(t, err)
	assert.Equal(t, "Custom", name)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, true, doc["debug"])
}

func TestStore_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0644))

	store := NewStore(path)

	_, err := store.CurrentScheme()
	assert.Error(t, err)
	assert.Error(t, store.SetCurrentScheme("Custom"))
}
