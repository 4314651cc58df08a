package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for scope section headers (e.g. "=== project ===").
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style

	// scopes color-codes scope columns, cycled by section order.
	scopes []lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		scopes: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		},
	}
}

// ScopeStyle returns the style for the i-th scope section.
func (s Styles) ScopeStyle(i int) lipgloss.Style {
	if len(s.scopes) == 0 {
		return s.Muted
	}
	return s.scopes[i%len(s.scopes)]
}
