package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/leapstack-labs/aliaslint/internal/cli/config"
	"github.com/leapstack-labs/aliaslint/internal/cli/testutil"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatchCommand(t *testing.T) {
	cmd := NewWatchCommand()

	assert.Equal(t, "watch", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	for _, flag := range []string{"format", "fix"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestWatchCommand_StopsOnCancel(t *testing.T) {
	root := testutil.SetupTestProject(t)
	t.Chdir(root)

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	cmd := NewWatchCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--format", "markdown"})

	require.NoError(t, cmd.ExecuteContext(ctx))
	assert.Contains(t, buf.String(), "Summary: 2 issues")
}

func TestGetConfig_Fallback(t *testing.T) {
	t.Setenv(config.EnvPrefix+"OUTPUT", "json")
	t.Setenv(config.EnvPrefix+"WORKERS", "3")

	cfg := getConfig()
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, ".", cfg.Root)
	assert.Equal(t, config.DefaultExtensions, cfg.Extensions)
}

func TestCreateEngine(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{Root: root}

	eng, err := createEngine(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, root, eng.Root())

	cfg.Lint = &config.LintConfig{Rules: map[string]config.RuleOptions{"IM01": {"unknown": 1}}}
	_, err = createEngine(cfg, nil, nil)
	require.Error(t, err)

	_, err = createEngine(cfg, lint.NewConfig(), nil)
	require.NoError(t, err, "explicit lint settings replace the project ones")
}
