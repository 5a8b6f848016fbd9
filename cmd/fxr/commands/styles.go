package commands

import "github.com/charmbracelet/lipgloss"

var (
	// Private brand colors.
	colorIris  = lipgloss.Color("#5D3FD3")
	colorSlate = lipgloss.Color("#667085")

	rootStyle = lipgloss.NewStyle().
			Foreground(colorIris).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	versionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")) // Green

	pathStyle = lipgloss.NewStyle().
			Foreground(colorSlate).
			Faint(true)

	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Orange
			Bold(true)
)
