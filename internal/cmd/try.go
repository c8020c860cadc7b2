package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/schemer/internal/logging"
	"github.com/renato0307/schemer/internal/ui"
)

// TryCmd opens an interactive screen that resolves key presses to actions
type TryCmd struct {
	Scheme string `help:"Scheme to try instead of the active one" short:"s"`
}

// Run executes the try command
func (t *TryCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService

	name := service.CurrentSchemeName()
	var src ui.ShortcutSource = service
	if t.Scheme != "" {
		if err := requireScheme(service, t.Scheme); err != nil {
			return err
		}
		name = t.Scheme
		src = ui.SchemeShortcuts{Scheme: service.Scheme(t.Scheme)}
	}

	logging.Logger.Info("Starting key tester", "scheme", name)
	p := tea.NewProgram(ui.NewKeyTester("Scheme: "+name, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Key tester error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
