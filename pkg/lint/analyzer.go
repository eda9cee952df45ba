package lint

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/aliaslint/pkg/core"
)

// activeRule is a rule prepared for a lint run.
type activeRule struct {
	rule    ImportRule
	check   ImportChecker
	docURL  string
	autoFix bool
}

// Analyzer runs the enabled import rules against parsed files.
// An Analyzer is safe for concurrent use once created.
type Analyzer struct {
	config *Config
	rules  []activeRule
}

// NewAnalyzer sets up every registered rule that config does not disable.
// It fails when a rule rejects its options.
func NewAnalyzer(config *Config) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}

	a := &Analyzer{config: config}
	for _, rule := range GetImportRules() {
		if config.IsDisabled(rule.ID()) {
			continue
		}
		check, err := rule.Setup(config.GetRuleOptions(rule.ID()))
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), err)
		}
		a.rules = append(a.rules, activeRule{
			rule:    rule,
			check:   check,
			docURL:  DocURL(rule),
			autoFix: rule.AutoFixable(),
		})
	}
	return a, nil
}

// Rules returns the IDs of the rules this analyzer runs.
func (a *Analyzer) Rules() []string {
	ids := make([]string, 0, len(a.rules))
	for _, r := range a.rules {
		ids = append(ids, r.rule.ID())
	}
	return ids
}

// Analyze runs all active rules against every import of file.
// Diagnostics are ordered by position, then by rule ID.
func (a *Analyzer) Analyze(file *core.SourceFile) []Diagnostic {
	if file == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, r := range a.rules {
		for _, imp := range file.Imports {
			diags := r.check(file, imp)
			for i := range diags {
				d := &diags[i]
				if d.RuleID == "" {
					d.RuleID = r.rule.ID()
				}
				d.Severity = a.config.GetSeverity(d.RuleID, d.Severity)
				if d.DocumentationURL == "" {
					d.DocumentationURL = r.docURL
				}
				d.AutoFixable = r.autoFix && len(d.Fixes) > 0
			}
			diagnostics = append(diagnostics, diags...)
		}
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Pos.Offset != diagnostics[j].Pos.Offset {
			return diagnostics[i].Pos.Offset < diagnostics[j].Pos.Offset
		}
		return diagnostics[i].RuleID < diagnostics[j].RuleID
	})
	return diagnostics
}
