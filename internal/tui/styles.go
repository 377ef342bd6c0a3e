package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Warm, photography-inspired palette
	primaryColor = lipgloss.Color("#E8A87C")
	accentColor  = lipgloss.Color("#85DCB0")
	mutedColor   = lipgloss.Color("#6B7280")
	dimTextColor = lipgloss.Color("#9CA3AF")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	metaStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	itemStyle = lipgloss.NewStyle().
			Foreground(dimTextColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			MarginTop(1)

	iconArrow = "→"
)
