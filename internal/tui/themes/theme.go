// Package themes defines the visual styles for the dashboard TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI. One of light, dark, or
// auto is persisted locally; auto resolves to dark.
type Theme struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Bold         lipgloss.Style
	Income       lipgloss.Style
	Expense      lipgloss.Style
	StatusError  lipgloss.Style
	StatusOK     lipgloss.Style
	Selected     lipgloss.Style
	Box          lipgloss.Style
	ProgressFull lipgloss.Style
	ProgressRest lipgloss.Style
	Name         string
	Primary      lipgloss.Color
	Muted        lipgloss.Color
	Success      lipgloss.Color
	Error        lipgloss.Color
}

func build(name string, primary, foreground, muted, success, errColor, border lipgloss.Color) Theme {
	return Theme{
		Name:    name,
		Primary: primary,
		Muted:   muted,
		Success: success,
		Error:   errColor,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted),
		Normal: lipgloss.NewStyle().
			Foreground(foreground),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(foreground),
		Income: lipgloss.NewStyle().
			Foreground(success),
		Expense: lipgloss.NewStyle().
			Foreground(errColor),
		StatusError: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),
		StatusOK: lipgloss.NewStyle().
			Foreground(success),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary).
			Reverse(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ProgressFull: lipgloss.NewStyle().
			Foreground(primary),
		ProgressRest: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// Dark is the default theme.
var Dark = build("dark",
	lipgloss.Color("#7c3aed"),
	lipgloss.Color("#fafafa"),
	lipgloss.Color("#737373"),
	lipgloss.Color("#10b981"),
	lipgloss.Color("#ef4444"),
	lipgloss.Color("#404040"))

// Light suits light terminal backgrounds.
var Light = build("light",
	lipgloss.Color("#6d28d9"),
	lipgloss.Color("#171717"),
	lipgloss.Color("#8a8a8a"),
	lipgloss.Color("#047857"),
	lipgloss.Color("#b91c1c"),
	lipgloss.Color("#d4d4d4"))

// FromName resolves a persisted theme preference. Unknown names and
// "auto" resolve to Dark.
func FromName(name string) Theme {
	if name == "light" {
		return Light
	}
	return Dark
}
