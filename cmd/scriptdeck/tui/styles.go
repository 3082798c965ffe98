// Package tui provides a full-screen picker interface over the script
// library using Charmbracelet's Bubble Tea, Lip Gloss, and Bubbles.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the TUI.
var (
	primaryColor = lipgloss.Color("#7D56F4")
	warningColor = lipgloss.Color("#FFC107")
	dangerColor  = lipgloss.Color("#DC3545")
	mutedColor   = lipgloss.Color("#666666")
)

// Text styles.
var (
	// titleStyle for the source pager header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	// statusStyle for the transient status line.
	statusStyle = lipgloss.NewStyle().
			Foreground(warningColor)

	// errorTextStyle for error messages.
	errorTextStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	// helpStyle for the key hints in the footer.
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
