package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/token"
)

// Node types of the tree-sitter TypeScript grammar used here.
const (
	nodeImportStatement = "import_statement"
	nodeImportClause    = "import_clause"
	nodeString          = "string"
	nodeError           = "ERROR"
	fieldSource         = "source"
	keywordType         = "type"
)

// extensions maps supported file extensions to their grammar.
var extensions = map[string]func() *sitter.Language{
	".ts":  typescript.GetLanguage,
	".mts": typescript.GetLanguage,
	".cts": typescript.GetLanguage,
	".tsx": tsx.GetLanguage,
}

// SupportedExtension reports whether path has an extension the parser handles.
func SupportedExtension(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extensions returns the supported file extensions.
func Extensions() []string {
	return []string{".ts", ".tsx", ".mts", ".cts"}
}

// Parse parses content and collects its import declarations. path selects
// the grammar and is stored on the returned file unchanged.
//
// When the source has syntax errors the file is still returned together
// with a *ParseError describing the first one.
func Parse(ctx context.Context, path string, content []byte) (*core.SourceFile, error) {
	lang, ok := extensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &UnsupportedFileError{Path: path}
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(lang())

	tree, err := p.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	lines := token.NewLineIndex(content)

	var imports []core.ImportDecl
	Walk(root, func(n *sitter.Node) bool {
		if n.Type() != nodeImportStatement {
			return true
		}
		if decl, ok := importDecl(n, content, lines); ok {
			imports = append(imports, decl)
		}
		return false
	})

	file := &core.SourceFile{
		Path:    path,
		Content: content,
		Imports: imports,
		Lines:   lines,
	}

	if root.HasError() {
		return file, syntaxError(path, root, lines)
	}
	return file, nil
}

// Walk traverses the syntax tree depth-first and calls fn for each node.
// If fn returns false, the children of that node are skipped.
func Walk(node *sitter.Node, fn func(node *sitter.Node) bool) {
	if node == nil || node.IsNull() {
		return
	}
	if !fn(node) {
		return
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		Walk(node.Child(i), fn)
	}
}

// importDecl builds the declaration for an import_statement node.
func importDecl(n *sitter.Node, content []byte, lines *token.LineIndex) (core.ImportDecl, bool) {
	source := n.ChildByFieldName(fieldSource)
	if source == nil || source.Type() != nodeString {
		return core.ImportDecl{}, false
	}

	decl := core.ImportDecl{
		Specifier:  source.Content(content),
		Span:       lines.Span(int(source.StartByte()), int(source.EndByte())),
		SideEffect: true,
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case keywordType:
			decl.TypeOnly = true
		case nodeImportClause:
			decl.SideEffect = false
		}
	}
	return decl, true
}

// syntaxError locates the first ERROR or missing node below root.
func syntaxError(path string, root *sitter.Node, lines *token.LineIndex) *ParseError {
	var bad *sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		if n.Type() == nodeError || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})

	perr := &ParseError{Path: path, Message: "syntax error"}
	if bad == nil {
		perr.Pos = lines.Position(0)
		return perr
	}
	perr.Pos = lines.Position(int(bad.StartByte()))
	if bad.IsMissing() {
		perr.Message = fmt.Sprintf("missing %s", bad.Type())
	}
	return perr
}
