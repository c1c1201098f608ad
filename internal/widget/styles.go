package widget

import "github.com/charmbracelet/lipgloss"

var (
	accentStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10a37f")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")).Bold(true)
	wrongStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	secondaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9fa6ad"))
	boldStyle      = lipgloss.NewStyle().Bold(true)
	italicStyle    = lipgloss.NewStyle().Italic(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10a37f"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3a3f45")).
			Padding(0, 1)
)
