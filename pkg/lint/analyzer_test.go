package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/token"
)

// sourceWithImports builds a SourceFile whose imports are located by
// searching for each specifier in src.
func sourceWithImports(t *testing.T, path, src string, specifiers ...string) *core.SourceFile {
	t.Helper()
	lines := token.NewLineIndex([]byte(src))
	var imports []core.ImportDecl
	for _, spec := range specifiers {
		start := strings.Index(src, spec)
		require.GreaterOrEqual(t, start, 0, "specifier %s not in source", spec)
		imports = append(imports, core.ImportDecl{
			Specifier: spec,
			Span:      lines.Span(start, start+len(spec)),
		})
	}
	return core.NewSourceFile(path, []byte(src), imports)
}

// flagRule reports every import whose specifier contains needle.
func flagRule(id, needle string) RuleDef {
	return RuleDef{
		ID:          id,
		Name:        "test." + strings.ToLower(id),
		Group:       "test",
		Severity:    core.SeverityWarning,
		AutoFixable: true,
		Setup: func(_ map[string]any) (ImportChecker, error) {
			return func(file *core.SourceFile, imp core.ImportDecl) []Diagnostic {
				if !strings.Contains(imp.Specifier, needle) {
					return nil
				}
				return []Diagnostic{{
					RuleID:   id,
					Severity: core.SeverityWarning,
					Message:  "found " + needle,
					Pos:      imp.Span.Start,
					EndPos:   imp.Span.End,
					Fixes: []Fix{{
						Description: "replace",
						TextEdits: []TextEdit{{
							Pos:     file.Position(imp.Span.Start.Offset + 1),
							EndPos:  file.Position(imp.Span.End.Offset - 1),
							NewText: "ok",
						}},
					}},
				}}
			}, nil
		},
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(flagRule("TB02", "b"))
	Register(flagRule("TB01", "a"))

	src := "import x from 'b';\nimport y from 'ab';\nimport z from 'c';\n"
	file := sourceWithImports(t, "src/app/routes/x.ts", src, "'b'", "'ab'", "'c'")

	analyzer, err := NewAnalyzer(NewConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"TB01", "TB02"}, analyzer.Rules())

	diags := analyzer.Analyze(file)
	require.Len(t, diags, 3)

	// Ordered by offset, then rule ID.
	assert.Equal(t, "TB02", diags[0].RuleID)
	assert.Equal(t, 1, diags[0].Pos.Line)
	assert.Equal(t, "TB01", diags[1].RuleID)
	assert.Equal(t, "TB02", diags[2].RuleID)
	assert.Equal(t, 2, diags[2].Pos.Line)

	for _, d := range diags {
		assert.True(t, d.AutoFixable)
		assert.Equal(t, BuildDocURL(d.RuleID), d.DocumentationURL)
	}
}

func TestAnalyzer_ConfigApplied(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(flagRule("TB01", "a"))
	Register(flagRule("TB02", "a"))

	file := sourceWithImports(t, "x.ts", "import x from 'a';\n", "'a'")

	analyzer, err := NewAnalyzer(NewConfig().Disable("TB02").SetSeverity("TB01", core.SeverityError))
	require.NoError(t, err)

	diags := analyzer.Analyze(file)
	require.Len(t, diags, 1)
	assert.Equal(t, "TB01", diags[0].RuleID)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
}

func TestAnalyzer_NilAndEmpty(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(flagRule("TB01", "a"))

	analyzer, err := NewAnalyzer(nil)
	require.NoError(t, err)
	assert.Nil(t, analyzer.Analyze(nil))
	assert.Empty(t, analyzer.Analyze(core.NewSourceFile("x.ts", nil, nil)))
}

func TestApplyFixes(t *testing.T) {
	src := []byte("import x from 'aaa';\nimport y from 'bbb';\n")
	lines := token.NewLineIndex(src)

	edit := func(start, end int, text string) TextEdit {
		return TextEdit{Pos: lines.Position(start), EndPos: lines.Position(end), NewText: text}
	}
	diag := func(edits ...TextEdit) Diagnostic {
		return Diagnostic{Fixes: []Fix{{TextEdits: edits}}}
	}

	tests := []struct {
		name        string
		diags       []Diagnostic
		want        string
		wantApplied int
	}{
		{
			name:        "no fixes",
			diags:       []Diagnostic{{Message: "no fix"}},
			want:        string(src),
			wantApplied: 0,
		},
		{
			name:        "delete then insert at the same offset",
			diags:       []Diagnostic{diag(edit(15, 18, ""), edit(15, 15, "@core"))},
			want:        "import x from '@core';\nimport y from 'bbb';\n",
			wantApplied: 1,
		},
		{
			name: "two fixes in one pass",
			diags: []Diagnostic{
				diag(edit(36, 39, ""), edit(36, 36, "two")),
				diag(edit(15, 18, ""), edit(15, 15, "one")),
			},
			want:        "import x from 'one';\nimport y from 'two';\n",
			wantApplied: 2,
		},
		{
			name: "overlapping fix skipped",
			diags: []Diagnostic{
				diag(edit(15, 18, "first")),
				diag(edit(16, 17, "second")),
			},
			want:        "import x from 'first';\nimport y from 'bbb';\n",
			wantApplied: 1,
		},
		{
			name:        "out of range edit ignored",
			diags:       []Diagnostic{diag(edit(15, 18, "x"), TextEdit{Pos: token.Position{Offset: 30}, EndPos: token.Position{Offset: 500}})},
			want:        string(src),
			wantApplied: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := ApplyFixes(src, tt.diags)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantApplied, applied)
		})
	}

	assert.Equal(t, "import x from 'aaa';\nimport y from 'bbb';\n", string(src), "input must not be modified")
}
