package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(0, 1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Done  = lipgloss.NewStyle().Foreground(Green)
	Warn  = lipgloss.NewStyle().Foreground(Red)

	barFill  = lipgloss.NewStyle().Foreground(Sapphire)
	barEmpty = lipgloss.NewStyle().Foreground(Surface1)
)

// Bar draws a percentage as a fixed-width gauge.
func Bar(percent, width int) string {
	if width < 1 {
		return ""
	}
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return barFill.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}

// Status colours a resource tracking status.
func Status(status string) string {
	switch status {
	case "completed":
		return Done.Render(status)
	case "watching":
		return lipgloss.NewStyle().Foreground(Yellow).Render(status)
	default:
		return Muted.Render(status)
	}
}
