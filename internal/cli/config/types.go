// Package config provides configuration management for the aliaslint CLI.
//
// Configuration is layered with koanf: built-in defaults, then
// aliaslint.yaml, then ALIASLINT_* environment variables, then the flags
// set on the command line.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
)

// Config holds all CLI configuration options.
type Config struct {
	Root         string      `koanf:"root"`
	Extensions   []string    `koanf:"extensions"`
	Exclude      []string    `koanf:"exclude"`
	Workers      int         `koanf:"workers"`
	CacheSize    int         `koanf:"cache_size"`
	OutputFormat string      `koanf:"output"`
	Verbose      bool        `koanf:"verbose"`
	Lint         *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when there is none. Relative paths resolve against it.
	ProjectRoot string `koanf:"-"`
}

// LintConfig holds lint rule configuration.
type LintConfig struct {
	// Disabled contains rule IDs to disable
	Disabled []string `koanf:"disabled"`

	// Severity maps rule ID to severity override (error, warning, info, hint)
	Severity map[string]string `koanf:"severity"`

	// Rules contains rule-specific options
	Rules map[string]RuleOptions `koanf:"rules"`
}

// RuleOptions holds rule-specific configuration options.
type RuleOptions map[string]any

// Default configuration values
const (
	DefaultOutput    = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultCacheSize = 2048
	ConfigFileYAML   = "aliaslint.yaml"
	ConfigFileYML    = "aliaslint.yml"
	EnvPrefix        = "ALIASLINT_"
)

// Output formats accepted by the output setting.
var OutputFormats = []string{"auto", "text", "markdown", "json"}

// DefaultExtensions are the file extensions linted by default.
var DefaultExtensions = []string{".ts", ".tsx", ".mts", ".cts"}

// DefaultExclude are the directory names skipped by default.
var DefaultExclude = []string{"node_modules", "dist", ".git", ".angular"}

// LintSettings converts the lint section into a lint.Config. Rule IDs are
// matched case-insensitively.
func (c *Config) LintSettings() (*lint.Config, error) {
	cfg := lint.NewConfig()
	if c == nil || c.Lint == nil {
		return cfg, nil
	}

	for _, id := range c.Lint.Disabled {
		cfg.Disable(strings.ToUpper(id))
	}
	for id, sev := range c.Lint.Severity {
		parsed, ok := core.ParseSeverity(sev)
		if !ok {
			return nil, fmt.Errorf("invalid severity %q for rule %s (valid: error, warning, info, hint)", sev, id)
		}
		cfg.SetSeverity(strings.ToUpper(id), parsed)
	}
	for id, opts := range c.Lint.Rules {
		cfg.SetRuleOptions(strings.ToUpper(id), opts)
	}
	return cfg, nil
}
