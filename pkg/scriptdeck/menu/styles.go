package menu

import "github.com/charmbracelet/lipgloss"

// Colors follow the ANSI 256-color palette used across the CLI output.
const (
	colorPrimary = lipgloss.Color("39")
	colorWarning = lipgloss.Color("214")
	colorMuted   = lipgloss.Color("245")
)

var (
	// titleStyle is used for menu titles.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// warningStyle is used for validation warnings.
	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// mutedStyle is used for prompts and secondary text.
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
