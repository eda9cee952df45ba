// Package rules provides the lint rule implementations for aliaslint.
//
// Rules are organized by category:
//   - imports: Rules about the shape of import specifiers (IM01)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/aliaslint/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/aliaslint/pkg/lint/rules/imports"
package rules
