package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long Watch waits for a burst of file events to
// settle before linting.
const DebounceInterval = 100 * time.Millisecond

// Watch lints changed files until ctx is done. onChange receives the result
// of each run; the initial full run is reported too.
func (e *Engine) Watch(ctx context.Context, onChange func(*Result)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := e.watchDirRecursive(watcher, e.root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", e.root, err)
	}

	initial, err := e.LintPaths(ctx, nil)
	if err != nil {
		return err
	}
	onChange(initial)

	var (
		pending       = make(map[string]bool)
		debounceTimer *time.Timer
		ready         = make(chan struct{}, 1)
	)
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	// flush runs on the watch loop, so runs never overlap.
	flush := func() {
		files := make([]string, 0, len(pending))
		for f := range pending {
			files = append(files, f)
		}
		pending = make(map[string]bool)

		if len(files) == 0 {
			return
		}
		sort.Strings(files)
		e.logger.Debug("files changed, re-linting", "files", len(files))

		result, err := e.Lint(ctx, files)
		if err != nil {
			e.logger.Error("lint failed", "error", err)
			return
		}
		onChange(result)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-ready:
			flush()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			var changed []string
			switch {
			case event.Op&fsnotify.Create != 0 && isDir(event.Name):
				if e.exclude[filepath.Base(event.Name)] {
					continue
				}
				if err := e.watchDirRecursive(watcher, event.Name); err != nil {
					e.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
				// Files may land in the directory before it is watched.
				found, walkErr := e.walk(ctx, event.Name)
				if walkErr != nil {
					e.logger.Warn("failed to scan new directory", "path", event.Name, "error", walkErr)
				}
				changed = found
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0 && e.lintable(event.Name):
				changed = []string{event.Name}
			}
			if len(changed) == 0 {
				continue
			}
			for _, f := range changed {
				pending[f] = true
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(DebounceInterval, func() {
				select {
				case ready <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the watcher.
func (e *Engine) watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && e.exclude[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
