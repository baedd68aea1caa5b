package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/cleanup/internal/output"
	"github.com/jmylchreest/cleanup/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		full, _ := cmd.Flags().GetBool("full")
		asJSON, _ := cmd.Flags().GetBool("json")

		switch {
		case asJSON:
			return output.Encode(cmd.OutOrStdout(), output.FormatJSON, version.Get())
		case full:
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return err
		default:
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cleanup %s\n", version.String())
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.String()

	versionCmd.Flags().Bool("full", false, "show build details")
	versionCmd.Flags().Bool("json", false, "output as JSON")
}
