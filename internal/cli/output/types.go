package output

// LintSummary counts lint findings.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
	Hints           int `json:"hints"`
	Fixable         int `json:"fixable"`
	Fixed           int `json:"fixed,omitempty"`
	Failed          int `json:"failed"`
}

// LintOutput is the JSON output of the lint command.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
	Errors  []FileError      `json:"errors,omitempty"`
	Fixes   []FixResult      `json:"fixes,omitempty"`
}

// LintFileResult lists the diagnostics of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is one lint finding.
type LintDiagnostic struct {
	RuleID           string `json:"rule_id"`
	Severity         string `json:"severity"`
	Message          string `json:"message"`
	Line             int    `json:"line"`
	Column           int    `json:"column"`
	EndLine          int    `json:"end_line"`
	EndColumn        int    `json:"end_column"`
	Fixable          bool   `json:"fixable"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

// FileError reports a file that could not be read or parsed.
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// FixResult reports the fixes applied to one file.
type FixResult struct {
	Path    string `json:"path"`
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"`
	Written bool   `json:"written"`
	Error   string `json:"error,omitempty"`
}

// VersionOutput is the JSON output of the version command.
type VersionOutput struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
	Go      string `json:"go"`
}
