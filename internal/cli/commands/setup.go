package commands

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/internal/cli/output"
	"github.com/leapstack-labs/aliaslint/internal/engine"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine and renderer.
// lintCfg replaces the rule settings from the config file when non-nil.
func NewCommandContext(cmd *cobra.Command, lintCfg *lint.Config) (*CommandContext, error) {
	cmdCtx := NewCommandContextWithoutEngine(cmd)

	eng, err := createEngine(cmdCtx.Cfg, lintCfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	cmdCtx.Engine = eng
	return cmdCtx, nil
}

// NewCommandContextWithoutEngine creates a CommandContext without an engine.
func NewCommandContextWithoutEngine(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// rendererFor returns r, or a renderer in the given format when one is set.
func rendererFor(cmd *cobra.Command, r *output.Renderer, format string) *output.Renderer {
	if format == "" {
		return r
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	workers, _ := strconv.Atoi(os.Getenv(config.EnvPrefix + "WORKERS"))
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &config.Config{
		Root:         getEnvOrDefault(config.EnvPrefix+"ROOT", "."),
		Extensions:   config.DefaultExtensions,
		Exclude:      config.DefaultExclude,
		Workers:      workers,
		CacheSize:    config.DefaultCacheSize,
		OutputFormat: getEnvOrDefault(config.EnvPrefix+"OUTPUT", config.DefaultOutput),
		Verbose:      strings.EqualFold(os.Getenv(config.EnvPrefix+"VERBOSE"), "true"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func createEngine(cfg *config.Config, lintCfg *lint.Config, logger *slog.Logger) (*engine.Engine, error) {
	if lintCfg == nil {
		var err error
		lintCfg, err = cfg.LintSettings()
		if err != nil {
			return nil, err
		}
	}

	return engine.New(engine.Config{
		Root:       cfg.Root,
		Extensions: cfg.Extensions,
		Exclude:    cfg.Exclude,
		Workers:    cfg.Workers,
		CacheSize:  cfg.CacheSize,
		Lint:       lintCfg,
		Logger:     logger,
	})
}
