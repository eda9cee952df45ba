package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// importsOf returns the imports of every non-test Go file in dir.
func importsOf(t *testing.T, dir string) map[string][]string {
	t.Helper()

	fset := token.NewFileSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir, err)
	}

	result := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		if strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}

		for _, imp := range f.Imports {
			result[entry.Name()] = append(result[entry.Name()], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return result
}

// TestCoreImportsOnly verifies pkg/core only imports allowed packages.
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
func TestCoreImportsOnly(t *testing.T) {
	allowedExternal := map[string]bool{
		"github.com/leapstack-labs/aliaslint/pkg/token": true,
	}

	for file, imports := range importsOf(t, ".") {
		for _, importPath := range imports {
			// Allow stdlib (no dots in path)
			if !strings.Contains(importPath, ".") {
				continue
			}
			if !allowedExternal[importPath] {
				t.Errorf("%s imports forbidden package: %s", file, importPath)
			}
		}
	}
}

// TestAliasIsStdlibOnly verifies the classification core has no dependencies
// beyond the standard library.
func TestAliasIsStdlibOnly(t *testing.T) {
	for file, imports := range importsOf(t, filepath.Join("..", "alias")) {
		for _, importPath := range imports {
			if strings.Contains(importPath, ".") {
				t.Errorf("alias/%s imports non-stdlib package: %s", file, importPath)
			}
		}
	}
}

// TestPkgDoesNotImportInternal verifies public packages never reach into internal/.
func TestPkgDoesNotImportInternal(t *testing.T) {
	for _, dir := range []string{".", "../alias", "../token", "../parser", "../lint", "../lint/rules"} {
		for file, imports := range importsOf(t, dir) {
			for _, importPath := range imports {
				if strings.Contains(importPath, "/internal/") {
					t.Errorf("%s/%s imports internal package: %s", dir, file, importPath)
				}
			}
		}
	}
}
