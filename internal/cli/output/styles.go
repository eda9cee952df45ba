package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used by the commands.
type Styles struct {
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	FilePath lipgloss.Style
	Code     lipgloss.Style
}

// newStyles builds the styles for w. Without color every style renders the
// text unchanged.
func newStyles(w io.Writer, color bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if color {
		lr.SetColorProfile(termenv.ANSI256)
	} else {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header2:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("245")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("42")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("214")),
		Error:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("69")),
		FilePath: lr.NewStyle().Underline(true).Foreground(lipgloss.Color("252")),
		Code:     lr.NewStyle().Foreground(lipgloss.Color("180")),
	}
}
