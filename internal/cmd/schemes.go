package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/schemer/internal/domain"
	"github.com/renato0307/schemer/internal/services"
	"github.com/renato0307/schemer/internal/theme"
)

// SchemesCmd manages schemes
type SchemesCmd struct {
	Bind   SchemesBindCmd   `cmd:"bind" help:"Set the shortcuts of an action in a scheme"`
	Copy   SchemesCopyCmd   `cmd:"copy" aliases:"cp" help:"Copy a scheme under a new name"`
	Delete SchemesDeleteCmd `cmd:"delete" aliases:"del,rm" help:"Delete a scheme"`
	List   SchemesListCmd   `cmd:"list" help:"List all schemes" default:"1"`
	Show   SchemesShowCmd   `cmd:"show" help:"Show the bindings of a scheme"`
	Unbind SchemesUnbindCmd `cmd:"unbind" help:"Remove every shortcut of an action from a scheme"`
	Use    SchemesUseCmd    `cmd:"use" help:"Make a scheme the active one"`
}

// SchemesListCmd lists all schemes
type SchemesListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type schemeSummaryJSON struct {
	Bindings int    `json:"bindings"`
	Current  bool   `json:"current"`
	Factory  bool   `json:"factory"`
	Name     string `json:"name"`
}

// Run executes the list command
func (s *SchemesListCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService
	names := service.Schemes()
	current := service.CurrentSchemeName()

	if s.Format == "json" {
		out := make([]schemeSummaryJSON, 0, len(names))
		for _, name := range names {
			out = append(out, schemeSummaryJSON{
				Bindings: service.Scheme(name).Len(),
				Current:  name == current,
				Factory:  service.IsFactoryScheme(name),
				Name:     name,
			})
		}
		return printJSON(cli.Out(), out)
	}

	fmt.Fprintln(cli.Out(), theme.TitleStyle.Render("Schemes"))
	for _, name := range names {
		marker := " "
		if name == current {
			marker = theme.CurrentMarkerStyle.Render("*")
		}
		line := fmt.Sprintf("%s %s %s", marker, theme.NameStyle.Render(name),
			theme.MutedStyle.Render(fmt.Sprintf("(%d bindings)", service.Scheme(name).Len())))
		if service.IsFactoryScheme(name) {
			line += " " + theme.FactoryTagStyle.Render("[factory]")
		}
		fmt.Fprintln(cli.Out(), line)
	}
	return nil
}

// SchemesShowCmd shows the bindings of a scheme
type SchemesShowCmd struct {
	All    bool   `help:"Include actions without shortcuts"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Name   string `arg:"" optional:"" help:"Scheme name (defaults to the active scheme)"`
}

// Run executes the show command
func (s *SchemesShowCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService
	name := s.Name
	if name == "" {
		name = service.CurrentSchemeName()
	}
	if err := requireScheme(service, name); err != nil {
		return err
	}
	scheme := service.Scheme(name)

	if s.Format == "json" {
		out := make(map[string][]string)
		for _, action := range scheme.Actions() {
			out[action.Name()] = sequenceStrings(scheme.Sequences(action))
		}
		return printJSON(cli.Out(), map[string]any{
			"name":     name,
			"bindings": out,
		})
	}

	fmt.Fprintln(cli.Out(), theme.TitleStyle.Render("Scheme: "+name))
	if scheme.IsEmpty() && !s.All {
		fmt.Fprintln(cli.Out(), theme.MutedStyle.Render("No shortcuts bound"))
		return nil
	}

	width := 0
	for _, action := range domain.AllActions() {
		width = max(width, len(action.Name()))
	}

	category := ""
	for _, action := range domain.AllActions() {
		seqs := scheme.Sequences(action)
		if len(seqs) == 0 && !s.All {
			continue
		}
		if action.Category() != category {
			category = action.Category()
			fmt.Fprintln(cli.Out(), theme.CategoryStyle.Render(category))
		}
		fmt.Fprintf(cli.Out(), "  %s  %s\n",
			theme.NameStyle.Render(fmt.Sprintf("%-*s", width, action.Name())),
			renderShortcuts(seqs))
	}
	return nil
}

// SchemesUseCmd activates a scheme
type SchemesUseCmd struct {
	Name string `arg:"" help:"Name of the scheme to activate"`
}

// Run executes the use command
func (s *SchemesUseCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService
	if err := requireScheme(service, s.Name); err != nil {
		return err
	}

	service.SetCurrentScheme(s.Name)
	if err := service.Save(context.Background()); err != nil {
		return err
	}

	fmt.Fprintln(cli.Out(), theme.SuccessStyle.Render(fmt.Sprintf("Active scheme: %s", s.Name)))
	return nil
}

// SchemesBindCmd sets the shortcuts of one action. Binding into a scheme that
// does not exist creates it; binding into the factory scheme saves a copy.
type SchemesBindCmd struct {
	Append    bool     `help:"Add to the existing shortcuts instead of replacing them" short:"a"`
	Scheme    string   `arg:"" help:"Scheme name"`
	Action    string   `arg:"" help:"Action name (see 'schemer actions list')"`
	Sequences []string `arg:"" help:"Key sequences such as 'Ctrl+T' or 'Ctrl+K, Ctrl+C'"`
}

// Run executes the bind command
func (s *SchemesBindCmd) Run(cli *CLI) error {
	action, err := domain.ParseAction(s.Action)
	if err != nil {
		return err
	}

	seqs := make([]domain.KeySequence, 0, len(s.Sequences))
	for _, text := range s.Sequences {
		seq, err := domain.ParseKeySequence(text)
		if err != nil {
			return err
		}
		seqs = append(seqs, seq)
	}

	service := cli.Container.SchemeService
	scheme := service.Scheme(s.Scheme)
	if s.Append {
		for _, seq := range seqs {
			scheme.Add(action, seq)
		}
	} else {
		scheme.SetSequences(action, seqs)
	}

	return saveScheme(cli, service, s.Scheme, scheme)
}

// SchemesUnbindCmd clears the shortcuts of one action
type SchemesUnbindCmd struct {
	Scheme string `arg:"" help:"Scheme name"`
	Action string `arg:"" help:"Action name"`
}

// Run executes the unbind command
func (s *SchemesUnbindCmd) Run(cli *CLI) error {
	action, err := domain.ParseAction(s.Action)
	if err != nil {
		return err
	}

	service := cli.Container.SchemeService
	if err := requireScheme(service, s.Scheme); err != nil {
		return err
	}

	scheme := service.Scheme(s.Scheme)
	scheme.SetSequences(action, nil)
	return saveScheme(cli, service, s.Scheme, scheme)
}

// SchemesCopyCmd copies a scheme
type SchemesCopyCmd struct {
	Source string `arg:"" help:"Scheme to copy"`
	Target string `arg:"" help:"Name of the new scheme"`
}

// Run executes the copy command
func (s *SchemesCopyCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService
	if err := requireScheme(service, s.Source); err != nil {
		return err
	}
	return saveScheme(cli, service, s.Target, service.Scheme(s.Source))
}

// SchemesDeleteCmd deletes a scheme
type SchemesDeleteCmd struct {
	Name string `arg:"" help:"Name of the scheme to delete"`
}

// Run executes the delete command
func (s *SchemesDeleteCmd) Run(cli *CLI) error {
	service := cli.Container.SchemeService
	if service.IsFactoryScheme(s.Name) {
		return fmt.Errorf("the factory scheme '%s' cannot be deleted", s.Name)
	}
	if err := requireScheme(service, s.Name); err != nil {
		return err
	}

	if err := service.DeleteScheme(context.Background(), s.Name); err != nil {
		return err
	}

	fmt.Fprintln(cli.Out(), theme.SuccessStyle.Render(fmt.Sprintf("Deleted scheme: %s", s.Name)))
	fmt.Fprintln(cli.Out(), theme.MutedStyle.Render(fmt.Sprintf("Active scheme: %s", service.CurrentSchemeName())))
	return nil
}

func requireScheme(service *services.SchemeService, name string) error {
	if !service.HasScheme(name) {
		return fmt.Errorf("%w: '%s'", domain.ErrSchemeNotFound, name)
	}
	return nil
}

func saveScheme(cli *CLI, service *services.SchemeService, name string, scheme *domain.Scheme) error {
	effective, err := service.SaveScheme(context.Background(), name, scheme)
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.Out(), theme.SuccessStyle.Render(fmt.Sprintf("Saved scheme: %s", effective)))
	if effective != name {
		fmt.Fprintln(cli.Out(), theme.MutedStyle.Render(
			fmt.Sprintf("'%s' is the factory scheme and cannot be changed; saved a copy instead", name)))
	}
	return nil
}
