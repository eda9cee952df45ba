package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Imports(t *testing.T) {
	src := `import { Component } from '@angular/core';
import { Foo } from '../core/index.ts';
import type { Bar } from "@shared";
import * as utils from './utils';
import './polyfills';
import Default, { named } from "../../shared/thing";

export class Page {}
`
	file, err := Parse(context.Background(), "src/app/routes/page.ts", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Imports, 6)

	want := []string{
		"'@angular/core'",
		"'../core/index.ts'",
		`"@shared"`,
		"'./utils'",
		"'./polyfills'",
		`"../../shared/thing"`,
	}
	for i, imp := range file.Imports {
		assert.Equal(t, want[i], imp.Specifier)
		assert.Equal(t, imp.Specifier, src[imp.Span.Start.Offset:imp.Span.End.Offset],
			"span must cover the quoted specifier")
	}

	second := file.Imports[1]
	assert.Equal(t, 2, second.Span.Start.Line)
	assert.Equal(t, 21, second.Span.Start.Column)

	assert.True(t, file.Imports[2].TypeOnly)
	assert.False(t, file.Imports[1].TypeOnly)
	assert.True(t, file.Imports[4].SideEffect)
	assert.False(t, file.Imports[0].SideEffect)
	assert.Equal(t, "src/app/routes/page.ts", file.Path)
}

func TestParse_TSX(t *testing.T) {
	src := `import { Button } from '../core/button';

export const App = () => <Button label="ok" />;
`
	file, err := Parse(context.Background(), "src/app/routes/app.tsx", []byte(src))
	require.NoError(t, err)
	require.Len(t, file.Imports, 1)
	assert.Equal(t, "'../core/button'", file.Imports[0].Specifier)
}

func TestParse_IgnoresNonImports(t *testing.T) {
	src := `export { x } from '../core';
const lazy = import('../core');
const req = "import a from '../core'";
`
	file, err := Parse(context.Background(), "a.ts", []byte(src))
	require.NoError(t, err)
	assert.Empty(t, file.Imports)
}

func TestParse_SyntaxError(t *testing.T) {
	src := `import { Foo } from '../core';
class {{{
`
	file, err := Parse(context.Background(), "broken.ts", []byte(src))
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "broken.ts", perr.Path)
	assert.Positive(t, perr.Pos.Line)

	require.NotNil(t, file, "partial result is returned")
	require.Len(t, file.Imports, 1)
}

func TestParse_Unsupported(t *testing.T) {
	_, err := Parse(context.Background(), "styles.css", []byte("a{}"))

	var uerr *UnsupportedFileError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "styles.css", uerr.Path)
}

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("a.ts"))
	assert.True(t, SupportedExtension("a.TSX"))
	assert.True(t, SupportedExtension("a.mts"))
	assert.False(t, SupportedExtension("a.js"))
	assert.False(t, SupportedExtension("a"))
	assert.Len(t, Extensions(), 4)
}
