package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/theme"
)

const maxKeyTesterHistory = 10

// KeyPress is a key received by the KeyTester and the action it resolved to
type KeyPress struct {
	Action domain.Action
	Key    string
}

// KeyTester is a small program that reports which action each key press
// triggers. Ctrl+C quits; "?" toggles the full help when it is unbound.
type KeyTester struct {
	help    help.Model
	history []KeyPress
	keys    KeyMap
	title   string
}

// NewKeyTester creates a KeyTester for the shortcuts of src
func NewKeyTester(title string, src ShortcutSource) *KeyTester {
	return &KeyTester{
		help:  help.New(),
		keys:  NewKeyMap(src),
		title: title,
	}
}

// Init implements tea.Model
func (m *KeyTester) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *KeyTester) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		action := m.keys.ActionFor(msg)
		if action == domain.NoAction && msg.String() == "?" {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.history = append(m.history, KeyPress{Action: action, Key: msg.String()})
		if len(m.history) > maxKeyTesterHistory {
			m.history = m.history[len(m.history)-maxKeyTesterHistory:]
		}
	}
	return m, nil
}

// History returns the recorded key presses, oldest first
func (m *KeyTester) History() []KeyPress {
	return m.history
}

// View implements tea.Model
func (m *KeyTester) View() string {
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(m.title) + "\n")
	b.WriteString(theme.MutedStyle.Render("Press keys to see their action, ctrl+c to quit") + "\n\n")

	if len(m.history) == 0 {
		b.WriteString(theme.MutedStyle.Render("No keys pressed yet") + "\n")
	}
	for _, press := range m.history {
		if press.Action == domain.NoAction {
			b.WriteString(fmt.Sprintf("%s  %s\n",
				theme.ShortcutStyle.Render(press.Key),
				theme.MutedStyle.Render("unbound")))
			continue
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			theme.ShortcutStyle.Render(press.Key),
			theme.NameStyle.Render(press.Action.Name()),
			theme.DescStyle.Render(press.Action.Description())))
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
