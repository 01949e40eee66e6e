package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	SuccessColor = lipgloss.Color("#a6e3a1")
	InfoColor    = lipgloss.Color("#89b4fa")
	WarningColor = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	AccentColor  = lipgloss.Color("#cba6f7")
	FaintColor   = lipgloss.Color("#6c7086")
)

// Fg returns a rendering function that applies the foreground color
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return lipgloss.NewStyle().Foreground(c).Render(s) }
}

// Bold returns a rendering function that makes text bold in the given color
func Bold(c lipgloss.Color) func(string) string {
	return func(s string) string { return lipgloss.NewStyle().Bold(true).Foreground(c).Render(s) }
}

func plain(s string) string { return s }

// palette maps message kinds to rendering functions
type palette struct {
	success, info, warning, error, accent, faint func(string) string
}

func newPalette(colored bool) palette {
	if !colored {
		return palette{plain, plain, plain, plain, plain, plain}
	}
	return palette{
		success: Fg(SuccessColor),
		info:    Fg(InfoColor),
		warning: Fg(WarningColor),
		error:   Fg(ErrorColor),
		accent:  Bold(AccentColor),
		faint:   Fg(FaintColor),
	}
}
