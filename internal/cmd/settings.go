package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/schemer/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	configFile := config.GetConfigPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return printJSON(cli.Out(), map[string]any{
			"config_file":   configFile,
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	out := cli.Out()
	fmt.Fprintf(out, "Settings file: %s\n", settingsFile)
	fmt.Fprintf(out, "Engine config: %s\n\n", configFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range slices.Sorted(maps.Keys(example)) {
		var valueStr string
		switch v := example[key].(type) {
		case map[string]any:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure schemer.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")

	return nil
}
