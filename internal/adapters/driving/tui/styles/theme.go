// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette of the page preview. Pages are drawn as
// paper-coloured cells on the map; the selection and pages overhanging
// the document edge are picked out from them.
type Theme struct {
	Primary    lipgloss.Color // selected page and titles
	Secondary  lipgloss.Color // pane headings
	Paper      lipgloss.Color // unselected page cells
	Foreground lipgloss.Color
	Muted      lipgloss.Color // labels and hints
	Warning    lipgloss.Color // pages reaching past the document
	Error      lipgloss.Color
	Border     lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2563EB"),
		Secondary:  lipgloss.Color("#0EA5E9"),
		Paper:      lipgloss.Color("#334155"),
		Foreground: lipgloss.Color("#E2E8F0"),
		Muted:      lipgloss.Color("#94A3B8"),
		Warning:    lipgloss.Color("#FBBF24"),
		Error:      lipgloss.Color("#F87171"),
		Border:     lipgloss.Color("#475569"),
	}
}

// Styles are the lipgloss styles the views render with.
type Styles struct {
	theme *Theme

	// Text.
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	// Grid map cells.
	Cell         lipgloss.Style
	EdgeCell     lipgloss.Style
	SelectedCell lipgloss.Style

	// Panes.
	Details   lipgloss.Style
	StatusBar lipgloss.Style
}

// NewStyles builds styles from a theme. A nil theme means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	text := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	cell := lipgloss.NewStyle().Background(theme.Paper)

	return &Styles{
		theme: theme,

		Title:    text(theme.Primary).Bold(true),
		Subtitle: text(theme.Secondary).Bold(true),
		Normal:   text(theme.Foreground),
		Muted:    text(theme.Muted),
		Error:    text(theme.Error),
		Help:     text(theme.Muted),

		Cell:         cell.Foreground(theme.Foreground),
		EdgeCell:     cell.Foreground(theme.Warning),
		SelectedCell: cell.Bold(true).Foreground(theme.Foreground).Background(theme.Primary),

		Details: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
		StatusBar: text(theme.Muted).
			Background(lipgloss.Color("#0F172A")).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
