package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/theme"
	"github.com/renato0307/schemer/internal/ui"
)

// ShortcutsCmd shows shortcuts of the active scheme, or of --scheme
type ShortcutsCmd struct {
	Action string `arg:"" optional:"" help:"Action name; without it every terminal-usable shortcut is shown"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Scheme string `help:"Scheme to read instead of the active one" short:"s"`
}

type shortcutJSON struct {
	Sequence string `json:"sequence"`
	Terminal string `json:"terminal,omitempty"`
}

// Run executes the shortcuts command
func (s *ShortcutsCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService

	var src ui.ShortcutSource = service
	if s.Scheme != "" {
		if err := requireScheme(service, s.Scheme); err != nil {
			return err
		}
		src = ui.SchemeShortcuts{Scheme: service.Scheme(s.Scheme)}
	}

	if s.Action == "" {
		if s.Format == "json" {
			return fmt.Errorf("--format json needs an action")
		}
		km := ui.NewKeyMap(src)
		fmt.Fprintln(cli.Out(), help.New().FullHelpView(km.FullHelp()))
		return nil
	}

	action, err := domain.ParseAction(s.Action)
	if err != nil {
		return err
	}
	seqs := src.ShortcutsFor(action)

	if s.Format == "json" {
		out := make([]shortcutJSON, 0, len(seqs))
		for _, seq := range seqs {
			terminal, _ := ui.BubbleTeaKey(seq)
			out = append(out, shortcutJSON{Sequence: seq.String(), Terminal: terminal})
		}
		return printJSON(cli.Out(), out)
	}

	fmt.Fprintf(cli.Out(), "%s %s\n",
		theme.TitleStyle.Render(action.Name()),
		theme.DescStyle.Render(action.Description()))
	if len(seqs) == 0 {
		fmt.Fprintln(cli.Out(), theme.MutedStyle.Render("  no shortcuts"))
		return nil
	}
	for _, seq := range seqs {
		terminal, ok := ui.BubbleTeaKey(seq)
		if !ok {
			terminal = theme.MutedStyle.Render("(not available in a terminal)")
		}
		fmt.Fprintf(cli.Out(), "  %s  %s\n", theme.ShortcutStyle.Render(seq.String()), terminal)
	}
	return nil
}
