package core

import "github.com/leapstack-labs/aliaslint/pkg/token"

// ImportDecl is a single import declaration found in a source file.
type ImportDecl struct {
	// Specifier is the module reference exactly as written, quotes included,
	// e.g. "'../core/index'".
	Specifier string
	// Span covers Specifier in the file, opening quote to closing quote.
	Span token.Span
	// SideEffect is true for `import '...'` declarations without bindings.
	SideEffect bool
	// TypeOnly is true for `import type ... from '...'`.
	TypeOnly bool
}

// SourceFile is a parsed TypeScript file.
type SourceFile struct {
	// Path is the slash-separated path handed to rules, relative to the
	// project root when the file lies inside it.
	Path    string
	Content []byte
	Imports []ImportDecl
	// Lines maps offsets to line/column positions.
	Lines *token.LineIndex
}

// NewSourceFile creates a SourceFile and indexes its lines.
func NewSourceFile(path string, content []byte, imports []ImportDecl) *SourceFile {
	return &SourceFile{
		Path:    path,
		Content: content,
		Imports: imports,
		Lines:   token.NewLineIndex(content),
	}
}

// Position returns the position of offset within the file.
func (f *SourceFile) Position(offset int) token.Position {
	if f.Lines == nil {
		return token.NewLineIndex(f.Content).Position(offset)
	}
	return f.Lines.Position(offset)
}
