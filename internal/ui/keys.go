package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/schemer/internal/domain"
)

// ShortcutSource provides the active sequences of an action
type ShortcutSource interface {
	ShortcutsFor(action domain.Action) []domain.KeySequence
}

// SchemeShortcuts reads shortcuts from a single scheme
type SchemeShortcuts struct {
	Scheme *domain.Scheme
}

// ShortcutsFor implements ShortcutSource
func (s SchemeShortcuts) ShortcutsFor(action domain.Action) []domain.KeySequence {
	return s.Scheme.Sequences(action)
}

// shortHelpActions are shown in the bottom help bar
var shortHelpActions = []domain.Action{
	domain.NewTab,
	domain.CloseTab,
	domain.Find,
	domain.ReloadPage,
	domain.HistoryBack,
	domain.HistoryForward,
}

// KeyMap holds one key.Binding per action, built from a scheme.
// Help text lists every bound sequence; only sequences a terminal can
// deliver as a single tea.KeyMsg are matchable. An action whose sequences
// are all unmatchable gets a disabled binding.
type KeyMap struct {
	bindings []key.Binding
}

// NewKeyMap builds bindings for every action from src
func NewKeyMap(src ShortcutSource) KeyMap {
	bindings := make([]key.Binding, domain.NumActions())
	for _, action := range domain.AllActions() {
		bindings[action] = buildBinding(action, src.ShortcutsFor(action))
	}
	return KeyMap{bindings: bindings}
}

func buildBinding(action domain.Action, seqs []domain.KeySequence) key.Binding {
	var keys []string
	help := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		help = append(help, seq.String())
		if k, ok := BubbleTeaKey(seq); ok {
			keys = append(keys, k)
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(help, "/"), action.Description()),
	)
}

// Binding returns the binding of an action; a zero binding for invalid actions
func (k KeyMap) Binding(action domain.Action) key.Binding {
	if !action.Valid() || int(action) >= len(k.bindings) {
		return key.Binding{}
	}
	return k.bindings[action]
}

// Matches reports whether msg triggers action
func (k KeyMap) Matches(msg tea.KeyMsg, action domain.Action) bool {
	b := k.Binding(action)
	return b.Enabled() && key.Matches(msg, b)
}

// ActionFor returns the first action in catalog order that msg triggers,
// or domain.NoAction
func (k KeyMap) ActionFor(msg tea.KeyMsg) domain.Action {
	for _, action := range domain.AllActions() {
		if k.Matches(msg, action) {
			return action
		}
	}
	return domain.NoAction
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	out := make([]key.Binding, 0, len(shortHelpActions))
	for _, action := range shortHelpActions {
		if b := k.Binding(action); b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

// FullHelp returns enabled bindings grouped by action category
func (k KeyMap) FullHelp() [][]key.Binding {
	groups := make(map[string][]key.Binding)
	for _, action := range domain.AllActions() {
		if b := k.Binding(action); b.Enabled() {
			groups[action.Category()] = append(groups[action.Category()], b)
		}
	}

	var out [][]key.Binding
	for _, category := range domain.Categories() {
		if len(groups[category]) > 0 {
			out = append(out, groups[category])
		}
	}
	return out
}
