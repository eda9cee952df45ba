package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/internal/cli/output"
	"github.com/leapstack-labs/aliaslint/internal/engine"
	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	_ "github.com/leapstack-labs/aliaslint/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
)

// ErrLintIssues is returned when lint issues remain after the run.
var ErrLintIssues = errors.New("lint issues found")

// lowestSeverity keeps every diagnostic when used as a threshold.
const lowestSeverity = core.SeverityHint

// LintOptions holds options for the lint command.
type LintOptions struct {
	Paths    []string // Files or directories; empty means the configured root
	Fix      bool     // Apply auto-fixes
	DryRun   bool     // Compute fixes without writing files
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint TypeScript imports",
		Long: `Analyze TypeScript files for relative imports that should use a path
mapping alias.

Without arguments every .ts/.tsx file under the configured root is
checked. Files that fail to parse are reported and skipped by --fix.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the project
  aliaslint lint

  # Lint specific paths
  aliaslint lint src/app/routes src/main.ts

  # Rewrite relative imports to their aliases
  aliaslint lint --fix

  # Show what --fix would change
  aliaslint lint --fix --dry-run

  # Output as JSON
  aliaslint lint --format json

  # Only report errors
  aliaslint lint --severity error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			return runLint(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Fix, "fix", false, "Apply auto-fixes")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "With --fix, report fixes without writing files")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", lowestSeverity.String(), "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runLint(cmd *cobra.Command, opts *LintOptions) error {
	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q (valid: error, warning, info, hint)", opts.Severity)
	}
	if opts.DryRun && !opts.Fix {
		return fmt.Errorf("--dry-run requires --fix")
	}

	lintCfg, err := buildLintConfig(getConfig(), opts)
	if err != nil {
		return err
	}

	cmdCtx, err := NewCommandContext(cmd, lintCfg)
	if err != nil {
		return err
	}
	eng := cmdCtx.Engine
	r := rendererFor(cmd, cmdCtx.Renderer, opts.Format)
	ctx := cmd.Context()

	result, err := eng.LintPaths(ctx, opts.Paths)
	if err != nil {
		return err
	}

	var fixes *engine.FixResult
	if opts.Fix {
		fixes, err = eng.Fix(ctx, result, opts.DryRun)
		if err != nil {
			return err
		}
		if !opts.DryRun && fixes.Applied() > 0 {
			// Report what is left after rewriting.
			result, err = eng.LintPaths(ctx, opts.Paths)
			if err != nil {
				return err
			}
		}
	}

	results := filterBySeverity(result, threshold)
	summary := summarize(result, results, fixes)

	renderLintResults(r, results, result.Failed(), fixes, summary)

	if summary.TotalIssues > 0 || summary.Failed > 0 {
		return ErrLintIssues
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	// Project config first (lower precedence)
	lintCfg, err := cfg.LintSettings()
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.ToUpper(strings.TrimSpace(id)))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			id = strings.ToUpper(strings.TrimSpace(id))
			if _, ok := lint.GetRuleByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q", id)
			}
			enabledSet[id] = true
		}
		for _, rule := range lint.GetImportRules() {
			if !enabledSet[rule.ID()] {
				lintCfg.Disable(rule.ID())
			}
		}
	}

	return lintCfg, nil
}

// lintFileResult holds lint results for a single file.
type lintFileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
}

func filterBySeverity(result *engine.Result, threshold core.Severity) []lintFileResult {
	var filtered []lintFileResult
	for _, f := range result.Files {
		var diags []lint.Diagnostic
		for _, d := range f.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		if len(diags) > 0 {
			filtered = append(filtered, lintFileResult{
				Path:        f.Path,
				Diagnostics: diags,
			})
		}
	}
	return filtered
}

func summarize(result *engine.Result, results []lintFileResult, fixes *engine.FixResult) output.LintSummary {
	summary := output.LintSummary{
		FilesAnalyzed:   len(result.Files),
		FilesWithIssues: len(results),
		Failed:          len(result.Failed()),
	}
	for _, res := range results {
		summary.TotalIssues += len(res.Diagnostics)
		for _, d := range res.Diagnostics {
			if d.AutoFixable {
				summary.Fixable++
			}
			switch d.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	if fixes != nil {
		summary.Fixed = fixes.Applied()
		summary.Failed += len(fixes.Failed())
	}
	return summary
}

func renderLintResults(r *output.Renderer, results []lintFileResult, failed []engine.FileResult, fixes *engine.FixResult, summary output.LintSummary) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(lintJSON(results, failed, fixes, summary))
		return
	}

	for _, f := range failed {
		r.Warning(f.Err.Error())
	}
	if fixes != nil {
		renderFixes(r, fixes)
	}

	if len(results) == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return
	}

	markdown := r.EffectiveMode() == output.ModeMarkdown
	for _, res := range results {
		if markdown {
			r.Println(output.FormatHeader(2, res.Path))
			r.Println("")
		} else {
			r.Println(r.Styles().FilePath.Render(res.Path))
		}
		for _, d := range res.Diagnostics {
			loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
			if d.Pos.Line == 0 {
				loc = "-"
			}
			if markdown {
				r.Printf("- `%s` **%s** %s: %s\n", loc, d.RuleID, d.Severity.String(), d.Message)
				continue
			}
			r.Printf("  %s  %s  %s  %s\n",
				r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
		r.Println("")
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.FilesWithIssues)
	if summary.Fixable > 0 && fixes == nil {
		r.Muted(fmt.Sprintf("%d fixable with --fix", summary.Fixable))
	}
}

func renderFixes(r *output.Renderer, fixes *engine.FixResult) {
	for _, f := range fixes.Files {
		switch {
		case f.Err != nil:
			r.Error(f.Err.Error())
		case f.Written:
			r.Success(fmt.Sprintf("%s: fixed %d imports", f.Path, f.Applied))
		case f.Applied > 0:
			r.Printf("%s: would fix %d imports\n", f.Path, f.Applied)
		}
		if f.Skipped > 0 {
			r.Muted(fmt.Sprintf("%s: %d overlapping fixes skipped, run again to apply", f.Path, f.Skipped))
		}
	}
	r.Println("")
}

func lintJSON(results []lintFileResult, failed []engine.FileResult, fixes *engine.FixResult, summary output.LintSummary) output.LintOutput {
	out := output.LintOutput{
		Summary: summary,
		Files:   []output.LintFileResult{},
	}
	for _, res := range results {
		fileResult := output.LintFileResult{Path: res.Path}
		for _, d := range res.Diagnostics {
			fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
				RuleID:           d.RuleID,
				Severity:         d.Severity.String(),
				Message:          d.Message,
				Line:             d.Pos.Line,
				Column:           d.Pos.Column,
				EndLine:          d.EndPos.Line,
				EndColumn:        d.EndPos.Column,
				Fixable:          d.AutoFixable,
				DocumentationURL: d.DocumentationURL,
			})
		}
		out.Files = append(out.Files, fileResult)
	}
	for _, f := range failed {
		out.Errors = append(out.Errors, output.FileError{Path: f.Path, Error: f.Err.Error()})
	}
	if fixes != nil {
		for _, f := range fixes.Files {
			fr := output.FixResult{
				Path:    f.Path,
				Applied: f.Applied,
				Skipped: f.Skipped,
				Written: f.Written,
			}
			if f.Err != nil {
				fr.Error = f.Err.Error()
			}
			out.Fixes = append(out.Fixes, fr)
		}
	}
	return out
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
