package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/theme"
)

// ActionsCmd lists the action catalog
type ActionsCmd struct {
	List ActionsListCmd `cmd:"list" help:"List all actions grouped by category" default:"1"`
}

// ActionsListCmd lists actions with their shortcuts in the active scheme
type ActionsListCmd struct {
	Category string `help:"Only show actions of this category" short:"c"`
	Format   string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type actionJSON struct {
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Name        string   `json:"name"`
	Shortcuts   []string `json:"shortcuts"`
}

// Run executes the list command
func (a *ActionsListCmd) Run(cli *CLI) error {
	if a.Category != "" && !isCategory(a.Category) {
		return fmt.Errorf("unknown category '%s' (expected one of %s)", a.Category, strings.Join(domain.Categories(), ", "))
	}

	service := cli.Container.SchemeService
	var actions []domain.Action
	for _, action := range domain.AllActions() {
		if a.Category == "" || strings.EqualFold(action.Category(), a.Category) {
			actions = append(actions, action)
		}
	}

	if a.Format == "json" {
		out := make([]actionJSON, 0, len(actions))
		for _, action := range actions {
			out = append(out, actionJSON{
				Category:    action.Category(),
				Description: action.Description(),
				Name:        action.Name(),
				Shortcuts:   sequenceStrings(service.ShortcutsFor(action)),
			})
		}
		return printJSON(cli.Out(), out)
	}

	fmt.Fprintln(cli.Out(), theme.TitleStyle.Render("Actions ("+service.CurrentSchemeName()+")"))

	width := 0
	for _, action := range actions {
		width = max(width, len(action.Name()))
	}

	category := ""
	for _, action := range actions {
		if action.Category() != category {
			category = action.Category()
			fmt.Fprintln(cli.Out(), theme.CategoryStyle.Render(category))
		}
		fmt.Fprintf(cli.Out(), "  %s  %s  %s\n",
			theme.NameStyle.Render(fmt.Sprintf("%-*s", width, action.Name())),
			renderShortcuts(service.ShortcutsFor(action)),
			theme.DescStyle.Render(action.Description()))
	}

	return nil
}

func isCategory(name string) bool {
	for _, category := range domain.Categories() {
		if strings.EqualFold(category, name) {
			return true
		}
	}
	return false
}

func sequenceStrings(seqs []domain.KeySequence) []string {
	out := make([]string, 0, len(seqs))
	for _, seq := range seqs {
		out = append(out, seq.String())
	}
	return out
}

// renderShortcuts joins sequences with "; " since multi-chord sequences
// already contain ", "
func renderShortcuts(seqs []domain.KeySequence) string {
	if len(seqs) == 0 {
		return theme.MutedStyle.Render("(none)")
	}
	return theme.ShortcutStyle.Render(strings.Join(sequenceStrings(seqs), "; "))
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
