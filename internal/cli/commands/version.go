package commands

import (
	"fmt"
	"runtime"

	"github.com/leapstack-labs/aliaslint/internal/cli/output"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display aliaslint version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := rendererFor(cmd, NewCommandContextWithoutEngine(cmd).Renderer, format)
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(output.VersionOutput{
					Version: version,
					Commit:  commit,
					Date:    date,
					Go:      runtime.Version(),
				})
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "aliaslint v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit %s, built %s with %s\n", commit, date, runtime.Version())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json")

	return cmd
}
