package lint

import (
	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/token"
)

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - everything a check needs is captured by Setup.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "IM01"
	Name        string        // Human-readable name, e.g., "imports.use_path_mapping"
	Group       string        // Category, e.g., "imports"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	ConfigKeys  []string      // Configuration keys this rule accepts
	AutoFixable bool          // Diagnostics carry fixes that can be applied unattended
	Setup       SetupFunc     // Builds the checker from rule options

	// Documentation fields for richer rule documentation
	Rationale        string // Why this rule exists, what problems it prevents
	BadExample       string // Code showing the anti-pattern
	GoodExample      string // Code showing the correct pattern
	Fix              string // How to fix violations (when not obvious)
	DocumentationURL string // Where the convention is described
}

// SetupFunc prepares a rule for a lint run. It is called once per Analyzer
// with the rule-specific options from configuration.
type SetupFunc func(opts map[string]any) (ImportChecker, error)

// ImportChecker inspects a single import declaration of file.
// Checkers must not keep per-call state; the analyzer may share one checker
// between goroutines.
type ImportChecker func(file *core.SourceFile, imp core.ImportDecl) []Diagnostic

// =============================================================================
// Diagnostics
// =============================================================================

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity core.Severity
	Message  string
	Pos      token.Position
	EndPos   token.Position // End of the problematic range
	Fixes    []Fix          // Suggested fixes

	// Remediation metadata
	DocumentationURL string // URL to convention documentation
	AutoFixable      bool   // true if Fixes can be auto-applied
}

// Fix represents a suggested code fix.
type Fix struct {
	Description string
	TextEdits   []TextEdit
}

// TextEdit represents a text replacement. A deletion has an empty NewText,
// an insertion has Pos == EndPos.
type TextEdit struct {
	Pos     token.Position
	EndPos  token.Position
	NewText string
}

// =============================================================================
// Rule Interfaces
// =============================================================================

// Rule is the base interface all lint rules implement.
type Rule interface {
	// ID returns the unique identifier, e.g., "IM01"
	ID() string

	// Name returns the human-readable name, e.g., "imports.use_path_mapping"
	Name() string

	// Group returns the category, e.g., "imports"
	Group() string

	// Description returns a human-readable description
	Description() string

	// DefaultSeverity returns the default severity for this rule
	DefaultSeverity() core.Severity

	// ConfigKeys returns configuration keys this rule accepts
	ConfigKeys() []string

	// Documentation methods for richer rule documentation
	Rationale() string        // Why this rule exists, what problems it prevents
	BadExample() string       // Code showing the anti-pattern
	GoodExample() string      // Code showing the correct pattern
	Fix() string              // How to fix violations (when not obvious)
	DocumentationURL() string // Where the convention is described
}

// ImportRule analyzes import declarations.
type ImportRule interface {
	Rule

	// AutoFixable reports whether the rule's fixes can be applied unattended.
	AutoFixable() bool

	// Setup builds the checker for one lint run.
	Setup(opts map[string]any) (ImportChecker, error)
}

// GetRuleInfo extracts metadata from a Rule for documentation/tooling.
func GetRuleInfo(r Rule) core.RuleInfo {
	info := core.RuleInfo{
		ID:               r.ID(),
		Name:             r.Name(),
		Group:            r.Group(),
		Description:      r.Description(),
		DefaultSeverity:  r.DefaultSeverity(),
		ConfigKeys:       r.ConfigKeys(),
		Rationale:        r.Rationale(),
		BadExample:       r.BadExample(),
		GoodExample:      r.GoodExample(),
		Fix:              r.Fix(),
		DocumentationURL: r.DocumentationURL(),
	}

	if ir, ok := r.(ImportRule); ok {
		info.Type = "import"
		info.AutoFixable = ir.AutoFixable()
	}

	return info
}

// =============================================================================
// Wrapped RuleDef
// =============================================================================

// wrappedRuleDef wraps a RuleDef to implement ImportRule.
type wrappedRuleDef struct {
	def RuleDef
}

// WrapRuleDef wraps a RuleDef to implement ImportRule interface.
func WrapRuleDef(def RuleDef) ImportRule {
	return &wrappedRuleDef{def: def}
}

func (w *wrappedRuleDef) ID() string                     { return w.def.ID }
func (w *wrappedRuleDef) Name() string                   { return w.def.Name }
func (w *wrappedRuleDef) Group() string                  { return w.def.Group }
func (w *wrappedRuleDef) Description() string            { return w.def.Description }
func (w *wrappedRuleDef) DefaultSeverity() core.Severity { return w.def.Severity }
func (w *wrappedRuleDef) ConfigKeys() []string           { return w.def.ConfigKeys }
func (w *wrappedRuleDef) AutoFixable() bool              { return w.def.AutoFixable }

// Documentation methods
func (w *wrappedRuleDef) Rationale() string        { return w.def.Rationale }
func (w *wrappedRuleDef) BadExample() string       { return w.def.BadExample }
func (w *wrappedRuleDef) GoodExample() string      { return w.def.GoodExample }
func (w *wrappedRuleDef) Fix() string              { return w.def.Fix }
func (w *wrappedRuleDef) DocumentationURL() string { return w.def.DocumentationURL }

func (w *wrappedRuleDef) Setup(opts map[string]any) (ImportChecker, error) {
	if w.def.Setup == nil {
		return func(*core.SourceFile, core.ImportDecl) []Diagnostic { return nil }, nil
	}
	return w.def.Setup(opts)
}

// Unwrap returns the underlying RuleDef.
func (w *wrappedRuleDef) Unwrap() RuleDef {
	return w.def
}
