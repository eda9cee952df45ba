// Package engine runs aliaslint over a project tree.
// It discovers TypeScript files, parses them on a worker pool, runs the
// enabled lint rules and applies their fixes.
package engine

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	"github.com/leapstack-labs/aliaslint/pkg/parser"
)

// DefaultCacheSize is the number of parsed files kept between runs.
const DefaultCacheSize = 2048

// DefaultExclude lists directory names that are never scanned.
var DefaultExclude = []string{"node_modules", "dist", ".git", ".angular"}

// Config holds engine configuration.
type Config struct {
	// Root is the project directory. File paths handed to rules are
	// relative to it.
	Root string
	// Extensions restricts the linted files (default: all parser extensions)
	Extensions []string
	// Exclude lists directory names skipped during discovery
	Exclude []string
	// Workers is the size of the lint worker pool (default: GOMAXPROCS)
	Workers int
	// CacheSize is the number of parsed files kept in memory
	CacheSize int
	// Lint selects rules, severities and rule options
	Lint *lint.Config
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Engine lints TypeScript files of one project.
type Engine struct {
	root       string
	extensions map[string]bool
	exclude    map[string]bool
	workers    int
	analyzer   *lint.Analyzer
	cache      *parseCache
	logger     *slog.Logger
}

// New creates an engine and sets up the enabled rules.
func New(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rootDir := cfg.Root
	if rootDir == "" {
		rootDir = "."
	}
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", rootDir, err)
	}

	analyzer, err := lint.NewAnalyzer(cfg.Lint)
	if err != nil {
		return nil, fmt.Errorf("failed to set up rules: %w", err)
	}

	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = parser.Extensions()
	}
	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extSet[ext] = true
	}

	exclude := cfg.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = true
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := newParseCache(cacheSize)
	if err != nil {
		return nil, err
	}

	logger.Debug("initializing engine",
		"root", root,
		"workers", workers,
		"rules", strings.Join(analyzer.Rules(), ","))

	return &Engine{
		root:       root,
		extensions: extSet,
		exclude:    excludeSet,
		workers:    workers,
		analyzer:   analyzer,
		cache:      cache,
		logger:     logger,
	}, nil
}

// Root returns the absolute project root.
func (e *Engine) Root() string {
	return e.root
}

// RelPath returns the slash-separated path of abs relative to the project
// root. Files outside the root keep their absolute path.
func (e *Engine) RelPath(abs string) string {
	rel, err := filepath.Rel(e.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(abs)
	}
	return filepath.ToSlash(rel)
}

// FileResult is the outcome of linting one file.
type FileResult struct {
	// Path is relative to the project root, slash-separated
	Path string `json:"path"`
	// AbsPath is the file location on disk
	AbsPath     string            `json:"-"`
	Diagnostics []lint.Diagnostic `json:"diagnostics"`
	// Err is a read or parse failure. Parse failures keep the diagnostics
	// of the imports that could still be read.
	Err error `json:"-"`

	content []byte
}

// Result is the outcome of a lint run.
type Result struct {
	Files []FileResult
}

// Issues returns the number of diagnostics across all files.
func (r *Result) Issues() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Diagnostics)
	}
	return n
}

// Fixable returns the number of diagnostics carrying a fix.
func (r *Result) Fixable() int {
	n := 0
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if len(d.Fixes) > 0 {
				n++
			}
		}
	}
	return n
}

// Failed returns the files that could not be read or parsed.
func (r *Result) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// CountBySeverity returns the number of diagnostics per severity.
func (r *Result) CountBySeverity() map[core.Severity]int {
	counts := make(map[core.Severity]int)
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			counts[d.Severity]++
		}
	}
	return counts
}
