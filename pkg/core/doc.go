// Package core defines the shared language of aliaslint.
//
// This package contains:
//   - Source entities (SourceFile, ImportDecl)
//   - Diagnostic severities and rule metadata (Severity, RuleInfo)
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
