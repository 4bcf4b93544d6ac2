package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // blue
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray
	styleKey   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5"))

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1)

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("12")).
			Padding(0, 1)

	styleOption = lipgloss.NewStyle().Padding(0, 1)

	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	styleCardActive = styleCard.
			BorderForeground(lipgloss.Color("12"))
)
