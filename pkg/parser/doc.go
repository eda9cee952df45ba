// Package parser extracts import declarations from TypeScript sources.
//
// Sources are parsed with tree-sitter (the typescript grammar, or tsx for
// .tsx files) and the resulting syntax tree is walked for import statements.
// Only what lint rules need is kept: the module specifier text exactly as
// written and its byte span.
package parser
