package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/parser"
)

// Lint checks the given files (absolute paths, see Collect) on the worker
// pool. Unreadable or unparseable files are reported in their FileResult;
// only cancellation aborts the run.
func (e *Engine) Lint(ctx context.Context, files []string) (*Result, error) {
	start := time.Now()
	e.logger.Info("starting lint", "files", len(files))

	results := make([]FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, abs := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Each worker writes its own slot.
			results[i] = e.lintFile(ctx, abs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("lint aborted: %w", err)
	}

	result := &Result{Files: results}
	e.logger.Info("lint completed",
		"files", len(files),
		"issues", result.Issues(),
		"failed", len(result.Failed()),
		"duration_ms", time.Since(start).Milliseconds())

	return result, nil
}

// LintPaths collects paths and lints the result.
func (e *Engine) LintPaths(ctx context.Context, paths []string) (*Result, error) {
	files, err := e.Collect(ctx, paths)
	if err != nil {
		return nil, err
	}
	return e.Lint(ctx, files)
}

func (e *Engine) lintFile(ctx context.Context, abs string) FileResult {
	res := FileResult{Path: e.RelPath(abs), AbsPath: abs}

	content, err := os.ReadFile(abs) //nolint:gosec // G304: abs comes from discovery
	if err != nil {
		e.logger.Warn("failed to read file", "path", res.Path, "error", err)
		res.Err = fmt.Errorf("failed to read %s: %w", res.Path, err)
		return res
	}
	res.content = content

	// Rules see the absolute path so zone matching does not depend on the root.
	file, parseErr := e.parse(ctx, filepath.ToSlash(abs), content)
	if file == nil {
		e.logger.Warn("failed to parse file", "path", res.Path, "error", parseErr)
		res.Err = parseErr
		return res
	}
	if parseErr != nil {
		var pe *parser.ParseError
		if errors.As(parseErr, &pe) {
			e.logger.Debug("syntax error, linting partial file", "path", res.Path, "line", pe.Pos.Line)
		}
		res.Err = parseErr
	}

	res.Diagnostics = e.analyzer.Analyze(file)
	return res
}

func (e *Engine) parse(ctx context.Context, path string, content []byte) (*core.SourceFile, error) {
	key := cacheKey(path, content)
	if entry, ok := e.cache.get(key); ok {
		return entry.file, entry.err
	}

	file, err := parser.Parse(ctx, path, content)
	if file != nil {
		e.cache.add(key, parseEntry{file: file, err: err})
	}
	return file, err
}
