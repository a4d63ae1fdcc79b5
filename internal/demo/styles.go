package demo

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#7C3AED")
	muted   = lipgloss.Color("#6B7280")
	white   = lipgloss.Color("#FFFFFF")
	danger  = lipgloss.Color("#EF4444")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)
	modeStyle       = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	activeModeStyle = lipgloss.NewStyle().Background(primary).Foreground(white).Padding(0, 1)
	spinnerStyle    = lipgloss.NewStyle().Foreground(primary)
	errorStyle      = lipgloss.NewStyle().Foreground(danger)
)
