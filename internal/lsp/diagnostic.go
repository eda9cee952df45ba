package lsp

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/aliaslint/pkg/core"
	"github.com/leapstack-labs/aliaslint/pkg/lint"
	_ "github.com/leapstack-labs/aliaslint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/aliaslint/pkg/parser"
)

// diagnosticSource is the source reported on every published diagnostic.
const diagnosticSource = "aliaslint"

// publishDiagnostics lints the document and publishes the result.
// Unsupported files and declaration files always get an empty list.
func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.documents.Get(uri)
	if doc == nil {
		return
	}

	diagnostics := []Diagnostic{}
	path := filepath.ToSlash(URIToPath(uri))
	if parser.SupportedExtension(path) && !strings.HasSuffix(path, ".d.ts") {
		diagnostics = append(diagnostics, s.lintDocument(ctx, uri, path, doc)...)
	} else {
		s.fixes.clearURI(uri)
	}

	version := doc.Version
	s.sendNotification("textDocument/publishDiagnostics", &PublishDiagnosticsParams{
		URI:         uri,
		Version:     &version,
		Diagnostics: diagnostics,
	})
}

// lintDocument parses the in-memory content and runs the analyzer on it.
// A syntax error is reported alongside whatever imports could be read.
func (s *Server) lintDocument(ctx context.Context, uri, path string, doc *Document) []Diagnostic {
	var diagnostics []Diagnostic

	file, err := parser.Parse(ctx, path, []byte(doc.Content))
	if err != nil {
		var parseErr *parser.ParseError
		if !errors.As(err, &parseErr) {
			s.logger.Warn("parse failed", "path", path, "error", err)
			s.fixes.clearURI(uri)
			return nil
		}
		start := toPosition(parseErr.Pos)
		diagnostics = append(diagnostics, Diagnostic{
			Range:    Range{Start: start, End: start},
			Severity: DiagnosticSeverityError,
			Source:   diagnosticSource,
			Message:  parseErr.Message,
		})
	}
	if file == nil {
		s.fixes.clearURI(uri)
		return diagnostics
	}

	found := s.analyzer.Analyze(file)
	s.fixes.store(uri, found)
	s.logger.Debug("linted", "path", path, "diagnostics", len(found))

	for _, d := range found {
		diagnostics = append(diagnostics, convertDiagnostic(d))
	}
	return diagnostics
}

// convertDiagnostic converts a lint diagnostic to an LSP diagnostic.
func convertDiagnostic(d lint.Diagnostic) Diagnostic {
	diag := Diagnostic{
		Range:    Range{Start: toPosition(d.Pos), End: toPosition(d.EndPos)},
		Severity: convertSeverity(d.Severity),
		Code:     d.RuleID,
		Source:   diagnosticSource,
		Message:  d.Message,
	}
	if d.DocumentationURL != "" {
		diag.CodeDescription = &CodeDescription{Href: d.DocumentationURL}
	}
	return diag
}

func convertSeverity(s core.Severity) DiagnosticSeverity {
	switch s {
	case core.SeverityError:
		return DiagnosticSeverityError
	case core.SeverityWarning:
		return DiagnosticSeverityWarning
	case core.SeverityInfo:
		return DiagnosticSeverityInformation
	default:
		return DiagnosticSeverityHint
	}
}
