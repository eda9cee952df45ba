package lsp

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/leapstack-labs/aliaslint/pkg/lint"
	"github.com/leapstack-labs/aliaslint/pkg/token"
)

// fixCache stores the fixable diagnostics of the last lint run per document.
type fixCache struct {
	mu    sync.RWMutex
	diags map[string][]lint.Diagnostic // URI -> diagnostics with fixes
}

func newFixCache() *fixCache {
	return &fixCache{diags: make(map[string][]lint.Diagnostic)}
}

// store replaces the cached diagnostics for uri with the fixable ones in diags.
func (c *fixCache) store(uri string, diags []lint.Diagnostic) {
	var fixable []lint.Diagnostic
	for _, d := range diags {
		if len(d.Fixes) > 0 {
			fixable = append(fixable, d)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(fixable) == 0 {
		delete(c.diags, uri)
		return
	}
	c.diags[uri] = fixable
}

// lookup returns the fixes of the diagnostic reported by rule ruleID at start.
func (c *fixCache) lookup(uri, ruleID string, start Position) []lint.Fix {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, d := range c.diags[uri] {
		if d.RuleID == ruleID && toPosition(d.Pos) == start {
			return d.Fixes
		}
	}
	return nil
}

// all returns every cached fixable diagnostic for uri.
func (c *fixCache) all(uri string) []lint.Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.diags[uri]
}

// clearURI removes all cached fixes for a URI.
func (c *fixCache) clearURI(uri string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.diags, uri)
}

// handleCodeAction handles the textDocument/codeAction request.
func (s *Server) handleCodeAction(msg *JSONRPCMessage) error {
	var params CodeActionParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: codeInvalidParams, Message: err.Error()})
		return err
	}

	s.sendResponse(msg.ID, s.getCodeActions(params), nil)
	return nil
}

// getCodeActions returns a quick fix per fixable diagnostic in the request
// and a fix-all action covering the whole document.
func (s *Server) getCodeActions(params CodeActionParams) []CodeAction {
	uri := params.TextDocument.URI
	actions := []CodeAction{}

	if wantsKind(params.Context.Only, CodeActionKindQuickFix) {
		for _, diag := range params.Context.Diagnostics {
			if diag.Source != diagnosticSource {
				continue
			}
			fixes := s.fixes.lookup(uri, diag.Code, diag.Range.Start)
			for _, fix := range fixes {
				actions = append(actions, CodeAction{
					Title:       fix.Description,
					Kind:        CodeActionKindQuickFix,
					Diagnostics: []Diagnostic{diag},
					IsPreferred: len(fixes) == 1,
					Edit: &WorkspaceEdit{
						Changes: map[string][]TextEdit{uri: convertTextEdits(fix.TextEdits)},
					},
				})
			}
		}
	}

	if wantsKind(params.Context.Only, CodeActionKindSourceFixAll) {
		if action, ok := s.fixAllAction(uri); ok {
			actions = append(actions, action)
		}
	}

	return actions
}

// fixAllAction rewrites the whole document with every non-overlapping fix.
func (s *Server) fixAllAction(uri string) (CodeAction, bool) {
	doc := s.documents.Get(uri)
	diags := s.fixes.all(uri)
	if doc == nil || len(diags) == 0 {
		return CodeAction{}, false
	}

	fixed, applied := lint.ApplyFixes([]byte(doc.Content), diags)
	if applied == 0 {
		return CodeAction{}, false
	}

	return CodeAction{
		Title: fmt.Sprintf("Fix all %s issues (%d)", diagnosticSource, applied),
		Kind:  CodeActionKindSourceFixAll,
		Edit: &WorkspaceEdit{
			Changes: map[string][]TextEdit{
				uri: {{Range: Range{End: doc.End()}, NewText: string(fixed)}},
			},
		},
	}, true
}

// wantsKind reports whether a client filter admits kind. An empty filter
// admits everything; "source" admits "source.fixAll".
func wantsKind(only []CodeActionKind, kind CodeActionKind) bool {
	if len(only) == 0 {
		return true
	}
	for _, k := range only {
		if k == kind || strings.HasPrefix(string(kind), string(k)+".") {
			return true
		}
	}
	return false
}

// convertTextEdits converts lint edits to LSP edits.
func convertTextEdits(edits []lint.TextEdit) []TextEdit {
	result := make([]TextEdit, len(edits))
	for i, edit := range edits {
		result[i] = TextEdit{
			Range:   Range{Start: toPosition(edit.Pos), End: toPosition(edit.EndPos)},
			NewText: edit.NewText,
		}
	}
	return result
}

// toPosition converts a 1-based source position to a 0-based LSP position.
func toPosition(p token.Position) Position {
	return Position{
		Line:      uint32(max(0, p.Line-1)),   //nolint:gosec // G115: clamped to non-negative
		Character: uint32(max(0, p.Column-1)), //nolint:gosec // G115: clamped to non-negative
	}
}
