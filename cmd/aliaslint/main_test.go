// Package main provides tests for the aliaslint CLI.
package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/aliaslint/internal/cli"
	"github.com/leapstack-labs/aliaslint/internal/cli/commands"
	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/internal/cli/output"
	"github.com/leapstack-labs/aliaslint/internal/cli/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "aliaslint v"+cli.Version)
}

func TestHelpCommand(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	for _, expected := range []string{"lint", "rules", "watch", "init", "lsp", "version", "completion"} {
		assert.Contains(t, out, expected)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "aliaslint")
}

func TestLintCommand_RootFlag(t *testing.T) {
	root := testutil.SetupTestProject(t)

	out, err := execute(t, "--root", root, "-o", "json", "lint")
	require.ErrorIs(t, err, commands.ErrLintIssues)

	var result output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 2, result.Summary.TotalIssues)
}

func TestLintCommand_ConfigFile(t *testing.T) {
	root := testutil.WriteProject(t, map[string]string{
		"aliaslint.yaml":              "lint:\n  disabled: [IM01]\n",
		"src/app/routes/user/list.ts": "import { Core } from '../../core/index';\n",
	})
	t.Chdir(root)

	out, err := execute(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found")
}

func TestInvalidOutputFlag(t *testing.T) {
	_, err := execute(t, "-o", "yaml", "version")
	require.Error(t, err)
}
