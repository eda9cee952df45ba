package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/aliaslint/internal/cli/testutil"
	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRules(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	flags := []string{"group", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	out, err := runRules(t)
	require.NoError(t, err)

	// Buffers are not terminals, so auto mode renders markdown.
	assert.Contains(t, out, "# Lint Rules")
	assert.Contains(t, out, "## Imports")
	assert.Contains(t, out, "| IM01 | imports.use_path_mapping | `warning` | true |")
	testutil.AssertValidMarkdown(t, out)
}

func TestRulesCommand_Text(t *testing.T) {
	out, err := runRules(t, "--format", "text", "--verbose")
	require.NoError(t, err)

	assert.Contains(t, out, "Lint Rules (1)")
	assert.Contains(t, out, "Imports")
	assert.Contains(t, out, "IM01")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "aliaslint rules <rule-id>")
	testutil.AssertNoANSI(t, out)
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "markdown",
			args: []string{"IM01"},
			want: []string{"# IM01 - imports.use_path_mapping", "**Auto-fix:** true", "```ts", "## Configuration"},
		},
		{
			name: "case insensitive id",
			args: []string{"im01", "--format", "text"},
			want: []string{"IM01 - imports.use_path_mapping", "Good Example", "paths, arguments, zone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRules(t, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRulesCommand_ShowJSON(t *testing.T) {
	out, err := runRules(t, "IM01", "--format", "json")
	require.NoError(t, err)

	var info core.RuleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "IM01", info.ID)
	assert.Equal(t, "imports", info.Group)
	assert.True(t, info.AutoFixable)
	assert.NotEmpty(t, info.DocumentationURL)
}

func TestRulesCommand_NotFound(t *testing.T) {
	_, err := runRules(t, "INVALID99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_JSON(t *testing.T) {
	t.Run("all rules", func(t *testing.T) {
		out, err := runRules(t, "--format", "json")
		require.NoError(t, err)

		var result RulesJSONOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Positive(t, result.Count)
		assert.Len(t, result.Rules, result.Count)
	})

	t.Run("unknown group", func(t *testing.T) {
		out, err := runRules(t, "--format", "json", "--group", "formatting")
		require.NoError(t, err)

		var result RulesJSONOutput
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Zero(t, result.Count)
		assert.NotNil(t, result.Rules)
	})
}

func TestGroupRules(t *testing.T) {
	rules := []core.RuleInfo{
		{ID: "AA01", Group: "alpha"},
		{ID: "AA02", Group: "alpha"},
		{ID: "IM01", Group: "imports"},
	}

	groups := groupRules(rules)
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 2)
	assert.Equal(t, "IM01", groups[1][0].ID)
	assert.Nil(t, groupRules(nil))
}

func TestFilterRulesByGroup(t *testing.T) {
	rules := []core.RuleInfo{
		{ID: "AA01", Group: "alpha"},
		{ID: "IM01", Group: "imports"},
	}

	assert.Len(t, filterRulesByGroup(rules, ""), 2)
	filtered := filterRulesByGroup(rules, "IMPORTS")
	require.Len(t, filtered, 1)
	assert.Equal(t, "IM01", filtered[0].ID)
}
