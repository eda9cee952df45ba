package imports_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	"github.com/leapstack-labs/aliaslint/pkg/lint/rules/imports"
	"github.com/leapstack-labs/aliaslint/pkg/parser"
)

const routeFile = "src/app/routes/file.ts"

// Helper to run IM01 with options against a source file
func runRule(t *testing.T, path, src string, opts map[string]any) []lint.Diagnostic {
	t.Helper()
	file, err := parser.Parse(context.Background(), path, []byte(src))
	require.NoError(t, err)

	cfg := lint.NewConfig()
	if opts != nil {
		cfg.SetRuleOptions("IM01", opts)
	}
	analyzer, err := lint.NewAnalyzer(cfg)
	require.NoError(t, err)

	var filtered []lint.Diagnostic
	for _, d := range analyzer.Analyze(file) {
		if d.RuleID == "IM01" {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestIM01_Registered(t *testing.T) {
	rule, ok := lint.GetRuleByID("IM01")
	require.True(t, ok)
	assert.Equal(t, "imports.use_path_mapping", rule.Name())
	assert.Equal(t, "imports", rule.Group())
	assert.Equal(t, core.SeverityWarning, rule.DefaultSeverity())
	assert.ElementsMatch(t, []string{"paths", "arguments", "zone"}, rule.ConfigKeys())
	assert.True(t, rule.AutoFixable())
	assert.Equal(t, "https://ng-alain.com/docs/styleguide#path-mapping", rule.DocumentationURL())
}

func TestIM01_SetupChecker(t *testing.T) {
	check, err := imports.UsePathMapping.Setup(nil)
	require.NoError(t, err)

	file, err := parser.Parse(context.Background(), routeFile, []byte("import { Foo } from '../core/index';\n"))
	require.NoError(t, err)
	require.Len(t, file.Imports, 1)

	diags := check(file, file.Imports[0])
	require.Len(t, diags, 1)
	assert.Equal(t, imports.UsePathMapping.ID, diags[0].RuleID)
	assert.Equal(t, imports.UsePathMapping.Severity, diags[0].Severity)
}

func TestIM01_UsePathMapping(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		src      string
		opts     map[string]any
		wantDiag bool
		wantMsg  string
	}{
		{
			name: "already uses @core",
			path: routeFile,
			src:  "import { Foo } from '@core';\n",
		},
		{
			name:     "relative path into core",
			path:     routeFile,
			src:      "import { Foo } from '../core/index.ts';\n",
			wantDiag: true,
			wantMsg:  "Should be imported using `@core`",
		},
		{
			name: "subdirectories allowed",
			path: routeFile,
			src:  "import { Foo } from '@core/index.ts';\n",
			opts: map[string]any{"arguments": []any{true, []any{"@core/*"}}},
		},
		{
			name:     "subdirectories not allowed",
			path:     routeFile,
			src:      "import { Foo } from '@core/index.ts';\n",
			opts:     map[string]any{"arguments": []any{true, []any{"@core"}}},
			wantDiag: true,
			wantMsg:  "Should be imported using `@core`",
		},
		{
			name:     "nested route climbing to core",
			path:     "src/app/routes/foo/bar.ts",
			src:      "import { Foo } from '../../core/index.ts';\n",
			wantDiag: true,
			wantMsg:  "Should be imported using `@core`",
		},
		{
			name: "file outside the routes directory",
			path: "src/other/bar.ts",
			src:  "import { Foo } from '../../core/index.ts';\n",
		},
		{
			name: "unmapped alias",
			path: routeFile,
			src:  "import { Component } from '@angular/core';\n",
		},
		{
			name:     "shared through paths shorthand",
			path:     routeFile,
			src:      "import { Bar } from \"@shared/components\";\n",
			opts:     map[string]any{"paths": []any{"@shared"}},
			wantDiag: true,
			wantMsg:  "Should be imported using `@shared`",
		},
		{
			name: "scalar argument is a single mapping",
			path: routeFile,
			src:  "import { Bar } from '@shared/components';\n",
			opts: map[string]any{"arguments": []any{true, "@core"}},
		},
		{
			name:     "falsy argument falls back to defaults",
			path:     routeFile,
			src:      "import { Bar } from '@shared/components';\n",
			opts:     map[string]any{"arguments": []any{true, false}},
			wantDiag: true,
			wantMsg:  "Should be imported using `@shared`",
		},
		{
			name: "side effect import in zone",
			path: routeFile,
			src:  "import '@core';\n",
		},
		{
			name:     "custom zone",
			path:     "web/pages/home.ts",
			src:      "import { Foo } from '../core';\n",
			opts:     map[string]any{"zone": `web\pages`},
			wantDiag: true,
			wantMsg:  "Should be imported using `@core`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.path, tt.src, tt.opts)
			if !tt.wantDiag {
				assert.Empty(t, diags, "unexpected IM01 diagnostic")
				return
			}
			require.Len(t, diags, 1)
			assert.Equal(t, tt.wantMsg, diags[0].Message)
			assert.Equal(t, core.SeverityWarning, diags[0].Severity)
			assert.True(t, diags[0].AutoFixable)
		})
	}
}

func TestIM01_Range(t *testing.T) {
	src := "\n    import { Foo } from '../core/index.ts';\n"
	diags := runRule(t, routeFile, src, nil)
	require.Len(t, diags, 1)

	start := strings.Index(src, "../core")
	d := diags[0]
	assert.Equal(t, start, d.Pos.Offset)
	assert.Equal(t, start+len("../core/index.ts"), d.EndPos.Offset)
	assert.Equal(t, 2, d.Pos.Line)
	assert.Equal(t, 26, d.Pos.Column)
}

func TestIM01_Fix(t *testing.T) {
	src := "\n      import { Foo } from '@core/index.ts';\n"
	diags := runRule(t, routeFile, src, map[string]any{"arguments": []any{true, []any{"@core"}}})
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 1)

	edits := diags[0].Fixes[0].TextEdits
	require.Len(t, edits, 2)
	assert.Empty(t, edits[0].NewText, "first edit deletes the specifier text")
	assert.Equal(t, edits[0].Pos, edits[1].Pos, "insertion happens where the deletion starts")
	assert.Equal(t, "@core", edits[1].NewText)

	fixed, applied := lint.ApplyFixes([]byte(src), diags)
	assert.Equal(t, 1, applied)
	assert.Equal(t, "\n      import { Foo } from '@core';\n", string(fixed))

	// Fixed output is clean.
	assert.Empty(t, runRule(t, routeFile, string(fixed), map[string]any{"arguments": []any{true, []any{"@core"}}}))
}

func TestIM01_FixMultipleImports(t *testing.T) {
	src := `import { A } from '../core/a';
import { B } from "../shared/b/c";
import { C } from '@angular/core';
`
	diags := runRule(t, routeFile, src, nil)
	require.Len(t, diags, 2)

	fixed, applied := lint.ApplyFixes([]byte(src), diags)
	assert.Equal(t, 2, applied)
	assert.Equal(t, `import { A } from '@core';
import { B } from "@shared";
import { C } from '@angular/core';
`, string(fixed))
}

func TestIM01_InvalidOptions(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("IM01", map[string]any{"pathz": []any{"@core"}})
	_, err := lint.NewAnalyzer(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IM01")
}

func TestIM01_Disabled(t *testing.T) {
	file, err := parser.Parse(context.Background(), routeFile, []byte("import { Foo } from '../core';\n"))
	require.NoError(t, err)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().Disable("IM01"))
	require.NoError(t, err)
	assert.Empty(t, analyzer.Analyze(file))
}

func TestIM01_SeverityOverride(t *testing.T) {
	file, err := parser.Parse(context.Background(), routeFile, []byte("import { Foo } from '../core';\n"))
	require.NoError(t, err)

	analyzer, err := lint.NewAnalyzer(lint.NewConfig().SetSeverity("IM01", core.SeverityError))
	require.NoError(t, err)
	diags := analyzer.Analyze(file)
	require.Len(t, diags, 1)
	assert.Equal(t, core.SeverityError, diags[0].Severity)
}
