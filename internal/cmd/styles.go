package cmd

import "github.com/charmbracelet/lipgloss"

// Demo output styles. Kept minimal: a header per section, a line per
// subscriber, and a dim style for the drive lines.
var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subscriberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	keyStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
)
