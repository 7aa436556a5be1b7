package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active tab
	ColorHighlight = "205" // Magenta - focused view marker
	ColorDanger    = "196" // Red - errors
	ColorMuted     = "241" // Gray - rules, hints
	ColorText      = "252" // Light gray - inactive tabs
)

// Styles contains shared style definitions for the menu and status line.
var Styles = struct {
	Title     lipgloss.Style // Bold accent color
	Tab       lipgloss.Style // Inactive tab label
	TabActive lipgloss.Style // Active tab label (same width as Tab)
	Muted     lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Focus     lipgloss.Style // Marker on the focused scene view
	Empty     lipgloss.Style // Empty state text (muted, italic)
	Overlay   lipgloss.Style // Popup box (compact, rounded border)
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Reverse(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Error: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Focus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Overlay: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
}
