package tui

import "github.com/charmbracelet/lipgloss"

// Palette carried over from the mobile app's visual identity.
const (
	colorRed    = lipgloss.Color("#F2545B")
	colorGreen  = lipgloss.Color("#82B865")
	colorBlue   = lipgloss.Color("#3B8EA5")
	colorYellow = lipgloss.Color("#FEAD34")
	colorInk    = lipgloss.Color("#27242E")
	colorMuted  = lipgloss.Color("#8A8A8A")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true).
			Padding(0, 1)

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorInk).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	thumbUpStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	thumbDownStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)
)
