package parser

import (
	"fmt"

	"github.com/leapstack-labs/aliaslint/pkg/token"
)

// ParseError reports a syntax error found in a source file. Imports outside
// the broken region are still extracted, so callers may keep the partial
// result.
type ParseError struct {
	Path    string
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error at line %d, column %d: %s", e.Path, e.Pos.Line, e.Pos.Column, e.Message)
}

// UnsupportedFileError is returned for files without a TypeScript extension.
type UnsupportedFileError struct {
	Path string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.Path)
}
