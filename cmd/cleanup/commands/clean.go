package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/cleanup/internal/logger"
	"github.com/jmylchreest/cleanup/internal/output"
	"github.com/jmylchreest/cleanup/pkg/cleaner"
	"github.com/jmylchreest/cleanup/pkg/plugin"
)

// cleanOptions holds the flags of the clean command.
type cleanOptions struct {
	File   string `flag:"file" validate:"required_with=Write"`
	Lines  string `flag:"lines"`
	Write  bool   `flag:"write"`
	Output string `flag:"output" validate:"excluded_with=Write"`
	Stats  bool   `flag:"stats"`
	Format string `flag:"format" validate:"oneof=text json jsonl yaml yml"`
	Quiet  bool   `flag:"quiet"`

	// Overrides for this run only; nil means use the stored setting.
	HTML     *bool `flag:"html"`
	Markdown *bool `flag:"markdown"`
}

// statsRecord is the --stats output for formats other than text.
type statsRecord struct {
	Source  string         `json:"source" yaml:"source"`
	Applied string         `json:"applied" yaml:"applied"`
	Lines   int            `json:"lines" yaml:"lines"`
	Stats   *cleaner.Stats `json:"stats" yaml:"stats"`
}

var cleanCmd = &cobra.Command{
	Use:     "clean [file]",
	Aliases: []string{plugin.CommandCleanUpSelection},
	Short:   "Clean up a selection",
	Long: `Clean up the selected lines of a file, or of stdin.

The selection defaults to the whole input. HTML tags are removed when
clean-html is enabled; Markdown is converted to plain text when
clean-markdown is enabled. When both are enabled the Markdown result is
computed from the original selection and replaces the HTML result.

"<N> rows cleaned" is printed to stderr, where N is the number of lines
in the original selection.

Examples:
  cleanup clean notes.md
  cleanup clean notes.md --lines 3:8 --write
  cat page.html | cleanup clean --stats --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("lines", "l", "", "line range to select, e.g. 3:8, 5 or 5: (default: all)")
	flags.BoolP("write", "w", false, "write the result back to the file")
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.Bool("stats", false, "print cleaning stats to stderr")
	flags.String("format", "text", "stats format: text, json, jsonl, yaml")
	flags.Bool("html", false, "strip HTML tags for this run (overrides settings)")
	flags.Bool("markdown", false, "convert Markdown to plain text for this run (overrides settings)")
}

func runClean(cmd *cobra.Command, args []string) error {
	opts := cleanOptions{Quiet: viper.GetBool("quiet")}
	if len(args) > 0 {
		opts.File = args[0]
	}
	opts.Lines, _ = cmd.Flags().GetString("lines")
	opts.Write, _ = cmd.Flags().GetBool("write")
	opts.Output, _ = cmd.Flags().GetString("output")
	opts.Stats, _ = cmd.Flags().GetBool("stats")
	opts.Format, _ = cmd.Flags().GetString("format")
	if cmd.Flags().Changed("html") {
		v, _ := cmd.Flags().GetBool("html")
		opts.HTML = &v
	}
	if cmd.Flags().Changed("markdown") {
		v, _ := cmd.Flags().GetBool("markdown")
		opts.Markdown = &v
	}

	p, err := loadPlugin()
	if err != nil {
		logger.Error("failed to locate settings", "error", err)
		return err
	}

	return executeClean(p, opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// executeClean runs one clean over the input described by opts.
func executeClean(p *plugin.Plugin, opts cleanOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := validateOptions(opts); err != nil {
		return err
	}

	content, source, err := readInput(opts.File, stdin)
	log := logger.With("source", source)
	if err != nil {
		log.Error("failed to read input", "error", err)
		return err
	}

	buf := plugin.NewBuffer(content)
	if opts.Lines != "" {
		start, end, err := plugin.ParseLineRange(opts.Lines)
		if err != nil {
			return err
		}
		if err := buf.SelectRange(start, end); err != nil {
			return err
		}
	}

	notifier := plugin.NotifierFunc(func(message string) {
		if !opts.Quiet {
			fmt.Fprintln(stderr, message)
		}
	})

	var result *cleaner.Result
	if opts.HTML != nil || opts.Markdown != nil {
		s := p.Settings()
		if opts.HTML != nil {
			s.CleanHTML = *opts.HTML
		}
		if opts.Markdown != nil {
			s.CleanMarkdown = *opts.Markdown
		}
		log.Debug("using one-off settings", "clean_html", s.CleanHTML, "clean_markdown", s.CleanMarkdown)
		result = p.CleanSelectionWith(buf, notifier, s)
	} else {
		result, err = p.Run(plugin.CommandCleanUpSelection, buf, notifier)
		if err != nil {
			return err
		}
	}

	if err := writeResult(opts, buf.String(), stdout); err != nil {
		log.Error("failed to write output", "error", err)
		return err
	}

	if opts.Stats {
		return writeStats(stderr, opts.Format, source, result)
	}
	return nil
}

func readInput(file string, stdin io.Reader) (content, source string, err error) {
	if file == "" || file == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "stdin", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	data, err := os.ReadFile(file) //#nosec G304 -- CLI tool reads user-specified file
	if err != nil {
		return "", file, fmt.Errorf("reading file %s: %w", file, err)
	}
	return string(data), file, nil
}

func writeResult(opts cleanOptions, content string, stdout io.Writer) error {
	switch {
	case opts.Write:
		mode := os.FileMode(0o644)
		if info, err := os.Stat(opts.File); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(opts.File, []byte(content), mode); err != nil {
			return fmt.Errorf("writing file %s: %w", opts.File, err)
		}
		logger.Debug("wrote cleaned file", "path", opts.File)
	case opts.Output != "":
		if err := os.WriteFile(opts.Output, []byte(content), 0o644); err != nil {
			return fmt.Errorf("writing output file %s: %w", opts.Output, err)
		}
		logger.Debug("wrote output file", "path", opts.Output)
	default:
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	return nil
}

func writeStats(w io.Writer, formatName, source string, result *cleaner.Result) error {
	if formatName == "text" {
		_, err := fmt.Fprintf(w, "Source: %s\nApplied: %s\n%s", source, result.Applied, result.Stats.String())
		return err
	}

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	return output.Encode(w, format, statsRecord{
		Source:  source,
		Applied: result.Applied,
		Lines:   result.Lines,
		Stats:   result.Stats,
	})
}
