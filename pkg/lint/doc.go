// Package lint provides the rule framework used by aliaslint.
//
// # Architecture
//
// The lint package follows a modular architecture with two layers:
//
//  1. Root package (pkg/lint/): shared contracts, the rule registry, the
//     analyzer and fix application
//  2. Rules (pkg/lint/rules/): concrete rules, registered from init()
//
// # Rule Registration
//
// Rules are automatically registered via init() functions when their package
// is imported:
//
//	import _ "github.com/leapstack-labs/aliaslint/pkg/lint/rules"
//
// # Import Rules
//
// An import rule is set up once per analyzer with its configured options and
// returns an ImportChecker. The analyzer then calls the checker for every
// import declaration of every file:
//
//	var MyRule = lint.RuleDef{
//		ID:       "MY01",
//		Name:     "imports.my_rule",
//		Group:    "imports",
//		Severity: core.SeverityWarning,
//		Setup: func(opts map[string]any) (lint.ImportChecker, error) {
//			return func(file *core.SourceFile, imp core.ImportDecl) []lint.Diagnostic {
//				return nil
//			}, nil
//		},
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// # Configuration
//
// Use Config to control which rules are enabled, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("IM01")
//	config.SetSeverity("IM01", core.SeverityError)
//	config.SetRuleOptions("IM01", map[string]any{"paths": []string{"@core/*"}})
//
// # Fixes
//
// Diagnostics may carry fixes made of text edits on byte offsets.
// ApplyFixes rewrites a source with every non-overlapping fix.
package lint
