package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/leapstack-labs/aliaslint/internal/engine"
	"github.com/spf13/cobra"
)

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	Format string
	Fix    bool
}

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	opts := &WatchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Lint continuously as files change",
		Long: `Lint the project, then re-lint every TypeScript file that is created or
changed under the configured root until interrupted.`,
		Example: `  # Watch the project
  aliaslint watch

  # Rewrite imports as files change
  aliaslint watch --fix`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Apply auto-fixes to changed files")

	return cmd
}

func runWatch(cmd *cobra.Command, opts *WatchOptions) error {
	cmdCtx, err := NewCommandContext(cmd, nil)
	if err != nil {
		return err
	}
	eng := cmdCtx.Engine
	r := rendererFor(cmd, cmdCtx.Renderer, opts.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r.Muted("Watching " + eng.Root() + " (Ctrl+C to stop)")

	err = eng.Watch(ctx, func(result *engine.Result) {
		var fixes *engine.FixResult
		if opts.Fix {
			var fixErr error
			fixes, fixErr = eng.Fix(ctx, result, false)
			if fixErr != nil {
				cmdCtx.Logger.Warn("fix aborted", "error", fixErr)
				return
			}
			if fixes.Applied() > 0 {
				// Fixed files trigger their own events; report the rewrite only.
				renderFixes(r, fixes)
				return
			}
		}

		results := filterBySeverity(result, lowestSeverity)
		summary := summarize(result, results, fixes)
		r.Muted(time.Now().Format(time.TimeOnly))
		renderLintResults(r, results, result.Failed(), nil, summary)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
