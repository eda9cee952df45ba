package alias_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/aliaslint/pkg/alias"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"'@core'", "@core"},
		{`"@core"`, "@core"},
		{"@core", "@core"},
		{"'", "'"},
		{`"`, `"`},
		{"", ""},
		{"''", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, alias.Unquote(tt.in), "Unquote(%q)", tt.in)
	}
}

func TestBuildEdit(t *testing.T) {
	edits := alias.BuildEdit(20, 16, "@core")

	assert.Equal(t, []alias.Edit{
		{Start: 21, End: 37},
		{Start: 21, End: 21, Text: "@core"},
	}, edits)
}

func TestBuildEdit_OnlyInteriorChanges(t *testing.T) {
	src := "import { Foo } from '../core/index.ts';\n"
	start := 20
	inner := len("../core/index.ts")

	edits := alias.BuildEdit(start, inner, "@core")

	// Deletion first, then insertion at the same offset.
	out := src[:edits[0].Start] + src[edits[0].End:]
	out = out[:edits[1].Start] + edits[1].Text + out[edits[1].Start:]

	assert.Equal(t, "import { Foo } from '@core';\n", out)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Should be imported using `@core`", alias.Message("@core"))
}
