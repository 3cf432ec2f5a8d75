package fancy

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	RootStyle = lipgloss.NewStyle().
			Foreground(ColorBlue).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorWhite).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Italic(true)

	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorDarkGray)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorCyan)

	RouteStyle = lipgloss.NewStyle().
			Foreground(ColorYellow)

	HandlerStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed)
)

// RouteText styles a route path
func RouteText(text string) string {
	return RouteStyle.Render(text)
}

// HandlerText styles a handler name
func HandlerText(text string) string {
	return HandlerStyle.Render(text)
}

// DefaultedText marks a value that fell back to its default
func DefaultedText(text string) string {
	return InfoStyle.Render(text + " (default)")
}
