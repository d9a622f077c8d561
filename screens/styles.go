package screens

import "github.com/charmbracelet/lipgloss"

var (
	colorEye      lipgloss.Color = "#ff3b30"
	colorEyeGlow  lipgloss.Color = "#ff9500"
	colorMuted    lipgloss.Color = "#8a8f98"
	colorAccent   lipgloss.Color = "#89b4fa"
	colorSuccess  lipgloss.Color = "#a6e3a1"
	colorError    lipgloss.Color = "#f38ba8"
	colorSurface0 lipgloss.Color = "#313244"
)

var (
	eyeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(1, 3)
	captionStyle = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	problemStyle = lipgloss.NewStyle().Foreground(colorError)
	headerStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	openedStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	refusedStyle = lipgloss.NewStyle().Foreground(colorError)
)
