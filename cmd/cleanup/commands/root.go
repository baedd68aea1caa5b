// Package commands implements the CLI commands for cleanup.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/cleanup/internal/logger"
	"github.com/jmylchreest/cleanup/pkg/plugin"
	"github.com/jmylchreest/cleanup/pkg/settings"
)

var rootCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Strip HTML tags and Markdown formatting from text",
	Long: `Cleanup removes formatting from a text selection.

A file (or stdin) is treated as an editor buffer and a line range as the
selection. Depending on the stored settings, HTML tags are stripped and/or
Markdown is reduced to plain text. The number of rows in the original
selection is reported on stderr.

Examples:
  # Clean a whole file and print the result
  cleanup clean notes.md

  # Clean lines 10-20 in place
  cleanup clean notes.md --lines 10:20 -w

  # Enable Markdown cleaning for future runs
  cleanup settings set clean-markdown true

  # One-off run with HTML stripping disabled
  pbpaste | cleanup clean --html=false --markdown`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
			JSON:  viper.GetBool("json_logs"),
			Level: viper.GetString("log_level"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.cleanup.yaml)")
	flags.String("settings", "", "settings record (default <user config dir>/cleanup/data.json)")
	flags.Bool("debug", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "suppress notices and non-error logs")
	flags.Bool("json-logs", false, "write logs as JSON")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("settings", flags.Lookup("settings"))
	_ = viper.BindPFlag("debug", flags.Lookup("debug"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("json_logs", flags.Lookup("json-logs"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".cleanup")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("CLEANUP")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// settingsPath returns the configured settings record location.
func settingsPath() (string, error) {
	if path := viper.GetString("settings"); path != "" {
		return path, nil
	}
	return settings.DefaultPath()
}

// loadPlugin creates the plugin over the configured settings record and
// loads it. A record that cannot be read is reported and replaced by
// the defaults for this run.
func loadPlugin() (*plugin.Plugin, error) {
	path, err := settingsPath()
	if err != nil {
		return nil, err
	}
	logger.Debug("using settings record", "path", path)

	p := plugin.New(settings.NewStore(path))
	_ = p.Load()
	return p, nil
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
