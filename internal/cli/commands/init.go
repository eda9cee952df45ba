package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/pkg/alias"
	"github.com/leapstack-labs/aliaslint/pkg/lint/rules/imports"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Force bool
	Paths []string
	Zone  string
}

// projectFile is the layout of a generated aliaslint.yaml.
type projectFile struct {
	Root       string      `yaml:"root"`
	Extensions []string    `yaml:"extensions"`
	Exclude    []string    `yaml:"exclude"`
	Output     string      `yaml:"output"`
	Lint       projectLint `yaml:"lint"`
}

type projectLint struct {
	Disabled []string                  `yaml:"disabled"`
	Severity map[string]string         `yaml:"severity"`
	Rules    map[string]map[string]any `yaml:"rules"`
}

const projectFileHeader = `# aliaslint configuration
#
# Values can be overridden with ALIASLINT_* environment variables and
# command-line flags.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an aliaslint.yaml",
		Long: `Write an aliaslint.yaml with the default settings to the given directory
(the current directory by default).`,
		Example: `  # Initialize in current directory
  aliaslint init

  # Use custom path mappings
  aliaslint init --paths @core,@shared,@env:environments

  # Overwrite an existing config
  aliaslint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing configuration")
	cmd.Flags().StringSliceVar(&opts.Paths, "paths", alias.DefaultEntries, "Path mappings (alias or alias:directory)")
	cmd.Flags().StringVar(&opts.Zone, "zone", "", "Only check files under this directory (default: src/app/routes)")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts *InitOptions) error {
	r := NewCommandContextWithoutEngine(cmd).Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileYAML)
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileYAML)
	}

	content, err := renderProjectFile(opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.Success("Created " + configPath)
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust the path mappings to match tsconfig.json")
	r.Println("  2. Run 'aliaslint lint' to check imports")
	r.Println("  3. Run 'aliaslint lint --fix' to rewrite them")

	return nil
}

func renderProjectFile(opts *InitOptions) ([]byte, error) {
	ruleOpts := map[string]any{"paths": opts.Paths}
	if opts.Zone != "" {
		ruleOpts["zone"] = opts.Zone
	}

	pf := projectFile{
		Root:       ".",
		Extensions: config.DefaultExtensions,
		Exclude:    config.DefaultExclude,
		Output:     config.DefaultOutput,
		Lint: projectLint{
			Disabled: []string{},
			Severity: map[string]string{},
			Rules: map[string]map[string]any{
				imports.UsePathMapping.ID: ruleOpts,
			},
		},
	}

	var buf bytes.Buffer
	buf.WriteString(projectFileHeader)
	buf.WriteString("\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(pf); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
