package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/leapstack-labs/aliaslint/pkg/lint"
)

// FileFix is the outcome of fixing one file.
type FileFix struct {
	Path    string `json:"path"`
	Applied int    `json:"applied"`
	// Skipped counts fixes that overlapped an applied one
	Skipped int  `json:"skipped"`
	Written bool `json:"written"`
	// Content is the fixed source
	Content []byte `json:"-"`
	Err     error  `json:"-"`
}

// FixResult is the outcome of a fix run.
type FixResult struct {
	Files []FileFix
}

// Applied returns the number of applied fixes across all files.
func (r *FixResult) Applied() int {
	n := 0
	for _, f := range r.Files {
		n += f.Applied
	}
	return n
}

// Failed returns the files whose fixes were rejected.
func (r *FixResult) Failed() []FileFix {
	var failed []FileFix
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Fix applies the fixes of every diagnostic in result. Files that failed to
// parse are left alone. The rewritten source must still compile as
// TypeScript, otherwise the file is not touched. With dryRun nothing is
// written.
func (e *Engine) Fix(ctx context.Context, result *Result, dryRun bool) (*FixResult, error) {
	out := &FixResult{}
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if file.Err != nil || len(file.Diagnostics) == 0 {
			continue
		}

		total := 0
		for _, d := range file.Diagnostics {
			total += len(d.Fixes)
		}
		if total == 0 {
			continue
		}

		fix := e.fixFile(file, total, dryRun)
		out.Files = append(out.Files, fix)
	}

	e.logger.Info("fix completed",
		"files", len(out.Files),
		"applied", out.Applied(),
		"failed", len(out.Failed()),
		"dry_run", dryRun)

	return out, nil
}

func (e *Engine) fixFile(file FileResult, total int, dryRun bool) FileFix {
	res := FileFix{Path: file.Path}

	content := file.content
	if content == nil {
		var err error
		content, err = os.ReadFile(file.AbsPath) //nolint:gosec // G304: path comes from discovery
		if err != nil {
			res.Err = fmt.Errorf("failed to read %s: %w", file.Path, err)
			return res
		}
	}

	fixed, applied := lint.ApplyFixes(content, file.Diagnostics)
	res.Applied = applied
	res.Skipped = total - applied
	res.Content = fixed
	if applied == 0 {
		return res
	}

	if err := validateTypeScript(file.Path, fixed); err != nil {
		e.logger.Error("fixed source does not compile, leaving file unchanged", "path", file.Path, "error", err)
		res.Err = err
		res.Applied = 0
		return res
	}

	if dryRun {
		return res
	}

	if err := writePreservingMode(file.AbsPath, fixed); err != nil {
		res.Err = err
		return res
	}
	res.Written = true
	e.logger.Debug("fixed file", "path", file.Path, "applied", applied, "skipped", res.Skipped)
	return res
}

// validateTypeScript compiles source with esbuild's TypeScript loader.
func validateTypeScript(path string, source []byte) error {
	loader := api.LoaderTS
	if strings.EqualFold(filepath.Ext(path), ".tsx") {
		loader = api.LoaderTSX
	}

	result := api.Transform(string(source), api.TransformOptions{
		Loader:     loader,
		Sourcefile: path,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	var msgs []string
	for _, m := range result.Errors {
		if m.Location != nil {
			msgs = append(msgs, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column+1, m.Text))
		} else {
			msgs = append(msgs, m.Text)
		}
	}
	return fmt.Errorf("%s: invalid TypeScript after fix:\n%s", path, strings.Join(msgs, "\n"))
}

func writePreservingMode(path string, content []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
