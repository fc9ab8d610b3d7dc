package cmd

import "github.com/charmbracelet/lipgloss"

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Margin(0, 0, 1)

var keyStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#9ecbff"})

var borderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#4b5563"})
