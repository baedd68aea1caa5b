package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/cleanup/internal/logger"
	"github.com/jmylchreest/cleanup/internal/output"
	"github.com/jmylchreest/cleanup/pkg/plugin"
	"github.com/jmylchreest/cleanup/pkg/settings"
)

// formatOptions holds the --format flag of the settings commands.
type formatOptions struct {
	Format  string `flag:"format" validate:"oneof=json yaml yml"`
	Compact bool   `flag:"compact"`
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the cleaning settings",
	Long: `Show or change the cleaning settings.

Settings are stored as a JSON record with two keys, cleanHtml and
cleanMarkdown. Every change is written immediately.

Examples:
  cleanup settings
  cleanup settings panel
  cleanup settings set clean-markdown true
  cleanup settings reset`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings record",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsPanelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Print the settings panel with descriptions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlugin()
		if err != nil {
			return err
		}
		return writePanel(cmd.OutOrStdout(), p.Panel())
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <field> <true|false>",
	Short: "Change a setting and save it",
	Long: `Change a setting and save it.

Fields: clean-html (or cleanHtml), clean-markdown (or cleanMarkdown).`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore and save the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadPlugin()
		if err != nil {
			return err
		}
		if err := p.Reset(); err != nil {
			logger.Error("failed to reset settings", "error", err)
			return err
		}
		logInfo("settings reset to defaults")
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the settings record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := settingsPath()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsPanelCmd, settingsSetCmd, settingsResetCmd, settingsPathCmd)

	settingsCmd.PersistentFlags().String("format", "json", "output format: json, yaml")
	settingsCmd.PersistentFlags().Bool("compact", false, "write JSON on a single line")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	opts := formatOptions{}
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Compact, _ = cmd.Flags().GetBool("compact")

	p, err := loadPlugin()
	if err != nil {
		return err
	}
	return writeSettings(cmd.OutOrStdout(), opts, p.Settings())
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	p, err := loadPlugin()
	if err != nil {
		return err
	}

	field, value, err := applySetting(p, args[0], args[1])
	if err != nil {
		return err
	}

	logInfo("%s = %t", field, value)
	return nil
}

// applySetting parses a field and value and toggles it on the plugin.
func applySetting(p *plugin.Plugin, name, raw string) (settings.Field, bool, error) {
	field, err := settings.ParseField(name)
	if err != nil {
		return "", false, err
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return "", false, fmt.Errorf("invalid value %q for %s: want true or false", raw, field)
	}

	if err := p.Toggle(field, value); err != nil {
		return "", false, err
	}
	return field, value, nil
}

func writeSettings(w io.Writer, opts formatOptions, s settings.Settings) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	return output.Encode(w, format, s, output.WithPretty(!opts.Compact))
}

func writePanel(w io.Writer, panel plugin.Panel) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", panel.Heading); err != nil {
		return err
	}
	for _, t := range panel.Toggles {
		state := "off"
		if t.Value {
			state = "on"
		}
		if _, err := fmt.Fprintf(w, "  [%-3s] %-15s %s\n         (%s)\n", state, t.Name, t.Description, t.Field); err != nil {
			return err
		}
	}
	return nil
}
