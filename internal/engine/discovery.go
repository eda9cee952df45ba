package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover returns every lintable file below the project root, sorted.
func (e *Engine) Discover(ctx context.Context) ([]string, error) {
	return e.walk(ctx, e.root)
}

// Collect expands paths (files or directories, relative to the working
// directory) into the sorted list of lintable files they denote. Without
// paths the whole project is discovered.
func (e *Engine) Collect(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return e.Discover(ctx)
	}

	seen := make(map[string]bool)
	var files []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}

		var found []string
		if info.IsDir() {
			found, err = e.walk(ctx, abs)
			if err != nil {
				return nil, err
			}
		} else {
			if !e.lintable(abs) {
				e.logger.Warn("skipping unsupported file", "path", p)
				continue
			}
			found = []string{abs}
		}

		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

func (e *Engine) walk(ctx context.Context, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			e.logger.Debug("skipping unreadable path", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && e.exclude[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if e.lintable(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(files)
	e.logger.Debug("discovered files", "dir", dir, "count", len(files))
	return files, nil
}

// lintable reports whether path has one of the configured extensions.
// Declaration files carry no runtime imports worth rewriting.
func (e *Engine) lintable(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(name, ".d.ts") {
		return false
	}
	return e.extensions[filepath.Ext(name)]
}
