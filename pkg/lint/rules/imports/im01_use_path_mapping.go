package imports

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/aliaslint/pkg/alias"
	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
)

const usePathMappingID = "IM01"

func init() {
	lint.Register(UsePathMapping)
}

// UsePathMapping requires files under the route zone to import mapped
// top-level directories through their canonical alias.
var UsePathMapping = lint.RuleDef{
	ID:          usePathMappingID,
	Name:        "imports.use_path_mapping",
	Group:       "imports",
	Description: "Importing a mapped directory from the routes directory must use its `@` alias.",
	Severity:    core.SeverityWarning,
	ConfigKeys:  []string{"paths", "arguments", "zone"},
	AutoFixable: true,
	Setup:       setupUsePathMapping,

	Rationale: `Consistent conventions make it easy to quickly identify and reference assets of different types.
Relative imports that climb out of the routes directory break whenever a route is moved, and
deep imports into a mapped directory bypass its public entry point.`,
	BadExample: `// src/app/routes/user/list.component.ts
import { CoreService } from '../../core/index';
import { Util } from '@core/utils';`,
	GoodExample: `// src/app/routes/user/list.component.ts
import { CoreService } from '@core';
import { Util } from '@core';`,
	Fix: "Replace the specifier with the canonical alias. Allow deep imports with a trailing segment, e.g. `@shared/*`.",
	DocumentationURL: "https://ng-alain.com/docs/styleguide#path-mapping",
}

// usePathMappingOptions is the option block of IM01.
//
// Arguments carries the positional tslint form, `[true, ["@core"]]`; its
// second element wins over Paths when set.
type usePathMappingOptions struct {
	Paths     []string `mapstructure:"paths"`
	Arguments []any    `mapstructure:"arguments"`
	Zone      string   `mapstructure:"zone"`
}

func decodeUsePathMappingOptions(opts map[string]any) (usePathMappingOptions, error) {
	var o usePathMappingOptions
	if len(opts) == 0 {
		return o, nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return o, err
	}
	if err := dec.Decode(opts); err != nil {
		return o, fmt.Errorf("invalid options: %w", err)
	}
	return o, nil
}

// entries returns the configured mapping entries, or the defaults when none
// are configured.
func (o usePathMappingOptions) entries() []string {
	if len(o.Arguments) > 1 && truthy(o.Arguments[1]) {
		return toStrings(o.Arguments[1])
	}
	if len(o.Paths) > 0 {
		return o.Paths
	}
	return alias.DefaultEntries
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}

// toStrings coerces a scalar into a one-element list; non-string items are
// dropped.
func toStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{t}
	default:
		return nil
	}
}

func setupUsePathMapping(opts map[string]any) (lint.ImportChecker, error) {
	o, err := decodeUsePathMappingOptions(opts)
	if err != nil {
		return nil, err
	}

	classifier := alias.NewClassifier(alias.Config{
		Zone:     o.Zone,
		Mappings: alias.ParseMappings(o.entries()),
	})

	return func(file *core.SourceFile, imp core.ImportDecl) []lint.Diagnostic {
		return checkUsePathMapping(classifier, file, imp)
	}, nil
}

func checkUsePathMapping(c *alias.Classifier, file *core.SourceFile, imp core.ImportDecl) []lint.Diagnostic {
	canonical, ok := c.Classify(file.Path, imp.Specifier)
	if !ok {
		return nil
	}

	text := alias.Unquote(imp.Specifier)
	start := imp.Span.Start.Offset
	edits := alias.BuildEdit(start, len(text), canonical)

	textEdits := make([]lint.TextEdit, 0, len(edits))
	for _, e := range edits {
		textEdits = append(textEdits, lint.TextEdit{
			Pos:     file.Position(e.Start),
			EndPos:  file.Position(e.End),
			NewText: e.Text,
		})
	}

	return []lint.Diagnostic{{
		RuleID:   usePathMappingID,
		Severity: core.SeverityWarning,
		Message:  alias.Message(canonical),
		Pos:      file.Position(start + 1),
		EndPos:   file.Position(start + 1 + len(text)),
		Fixes: []lint.Fix{{
			Description: fmt.Sprintf("Import from `%s`", canonical),
			TextEdits:   textEdits,
		}},
	}}
}
