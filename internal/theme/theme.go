// Package theme provides the Lip Gloss color palette and reusable styles
// for the pedidos TUI. It is a leaf package with no internal imports
// to avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	ColorOrder   = lipgloss.Color("#f58220") // default order event color
	ColorAccent  = lipgloss.Color("#3b82f6")
	ColorToday   = lipgloss.Color("#22c55e")
	ColorWeekend = lipgloss.Color("#9ca3af")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorFocus   = lipgloss.Color("#f58220")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorBg      = lipgloss.Color("#111827")
	ColorHealthy = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
)

// Reusable styles.
var (
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFocus)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StyleLink = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Underline(true)
)

// Panel returns the bordered box used by the filter and calendar panes.
// width is the content width; the box is four columns wider.
func Panel(width int, focused bool) lipgloss.Style {
	border := ColorBorder
	if focused {
		border = ColorFocus
	}
	// lipgloss counts padding inside Width.
	return lipgloss.NewStyle().
		Width(width + 2).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// EventColor parses a CSS hex color from an event record, falling back to
// the order color.
func EventColor(hex string) lipgloss.Color {
	if len(hex) == 7 && hex[0] == '#' {
		return lipgloss.Color(hex)
	}
	return ColorOrder
}

// Heading renders a styled title followed by a dimmed aside, on the same
// line when both fit in width and on the next line otherwise.
func Heading(title, aside string, width int) string {
	if lipgloss.Width(title)+2+lipgloss.Width(aside) <= width {
		return title + StyleDimmed.Render("  "+aside)
	}
	return title + "\n" + StyleDimmed.Render(aside)
}
