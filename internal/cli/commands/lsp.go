package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/internal/lsp"
	"github.com/spf13/cobra"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC. It publishes
diagnostics for open TypeScript files and offers quick fixes that rewrite
imports to their path mapping.

The workspace root is taken from the client's initialization request
(rootUri) unless --root, ALIASLINT_ROOT or a config file sets it.`,
		Example: `  # Start LSP server (usually called by an editor)
  aliaslint lsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLSP(cmd, version)
		},
	}

	return cmd
}

func runLSP(cmd *cobra.Command, version string) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	lintCfg, err := cfg.LintSettings()
	if err != nil {
		return err
	}

	root := ""
	if rootConfigured(cmd) {
		if root, err = filepath.Abs(cfg.Root); err != nil {
			return fmt.Errorf("failed to resolve root: %w", err)
		}
	}

	server, err := lsp.NewServer(cmd.InOrStdin(), cmd.OutOrStdout(), lsp.Config{
		Root:    root,
		Lint:    lintCfg,
		Version: version,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}

// rootConfigured reports whether the user chose a root rather than relying
// on the default.
func rootConfigured(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("root"); f != nil && f.Changed {
		return true
	}
	if os.Getenv(config.EnvPrefix+"ROOT") != "" {
		return true
	}
	return config.GetConfigFileUsed() != ""
}
