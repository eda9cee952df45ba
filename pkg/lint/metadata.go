package lint

import (
	"fmt"
	"strings"
)

// DefaultDocsBaseURL is the hosted rule reference.
const DefaultDocsBaseURL = "https://github.com/leapstack-labs/aliaslint/blob/main/docs/rules"

// DocsBaseURL can be overridden for local or mirrored documentation.
var DocsBaseURL = DefaultDocsBaseURL

// BuildDocURL constructs a documentation URL for a rule.
func BuildDocURL(ruleID string) string {
	return fmt.Sprintf("%s/%s.md", DocsBaseURL, strings.ToLower(ruleID))
}

// SetDocsBaseURL overrides the default documentation base URL.
func SetDocsBaseURL(url string) {
	DocsBaseURL = strings.TrimSuffix(url, "/")
}

// ResetDocsBaseURL resets to the default documentation URL.
func ResetDocsBaseURL() {
	DocsBaseURL = DefaultDocsBaseURL
}

// DocURL returns the documentation URL of a rule, falling back to the
// generated rule reference page.
func DocURL(r Rule) string {
	if url := r.DocumentationURL(); url != "" {
		return url
	}
	return BuildDocURL(r.ID())
}
