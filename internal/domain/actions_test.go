package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionByName_RoundTripsEveryAction(t *testing.T) {
	for _, a := range AllActions() {
		t.Run(a.Name(), func(t *testing.T) {
			assert.Equal(t, a, ActionByName(ActionName(a)))
		})
	}
}

func TestActionName_IsUniqueAndSerializable(t *testing.T) {
	seen := make(map[string]Action)
	for _, a := range AllActions() {
		name := ActionName(a)
		require.NotEmpty(t, name, "action %d has no name", a)
		assert.NotContains(t, name, ":")
		assert.NotContains(t, name, "_")
		assert.Equal(t, name, strings.TrimSpace(name))

		prev, dup := seen[name]
		assert.False(t, dup, "name %q used by %d and %d", name, prev, a)
		seen[name] = a
	}
	assert.Len(t, seen, NumActions())
}

func TestActionName_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{"no action", NoAction},
		{"negative", Action(-42)},
		{"past the end", Action(NumActions())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, ActionName(tt.action))
			assert.False(t, tt.action.Valid())
			assert.Empty(t, tt.action.Category())
			assert.Equal(t, "NoAction", tt.action.String())
		})
	}
}

func TestActionByName_Unknown(t *testing.T) {
	tests := []string{"", "newtab", "NewTab ", "Bogus", "0_NewTab"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, NoAction, ActionByName(name))
		})
	}
}

func TestAllActions_CatalogOrder(t *testing.T) {
	actions := AllActions()
	require.Len(t, actions, NumActions())
	assert.Equal(t, NewWindow, actions[0])
	assert.Equal(t, SwitchAppLanguage, actions[len(actions)-1])
	for i, a := range actions {
		assert.Equal(t, Action(i), a)
	}
}

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]string{"File", "Edit", "View", "History", "Bookmarks", "Window", "Tools", "Help"},
		Categories())
	assert.Equal(t, "Window", NextTab.Category())
	assert.NotEmpty(t, NewTab.Description())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("NewTab")
	require.NoError(t, err)
	assert.Equal(t, NewTab, a)

	a, err = ParseAction("newtab")
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Equal(t, NoAction, a)
}
