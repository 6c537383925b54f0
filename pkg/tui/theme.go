package tui

import "github.com/charmbracelet/lipgloss"

// Theme centralizes Lip Gloss styles for the quote widget.
type Theme struct {
	Title      lipgloss.Style
	Category   lipgloss.Style
	Selected   lipgloss.Style
	Panel      lipgloss.Style
	QuoteText  lipgloss.Style
	QuoteTag   lipgloss.Style
	Hint       lipgloss.Style
	Row        lipgloss.Style
	Cursor     lipgloss.Style
	StatusOK   lipgloss.Style
	StatusErr  lipgloss.Style
	Help       lipgloss.Style
	FormFrame  lipgloss.Style
	FormLabel  lipgloss.Style
	FormActive lipgloss.Style
	FormError  lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	accent := lipgloss.Color("39")
	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Background(lipgloss.Color("25")).Foreground(lipgloss.Color("255")).Padding(0, 1),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		QuoteText:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("255")),
		QuoteTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Hint:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true),
		Row:        lipgloss.NewStyle().Padding(0, 1),
		Cursor:     lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")).Padding(0, 1),
		StatusOK:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusErr:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		FormFrame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2).Width(64),
		FormLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FormActive: lipgloss.NewStyle().Bold(true).Foreground(accent),
		FormError:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
