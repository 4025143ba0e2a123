package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	borderColor  = lipgloss.Color("238")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(1).
			PaddingRight(1)

	searchStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderColor).
			BorderTop(false).
			BorderBottom(false).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	composeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("#EF5366"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	folderStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	activeFolderStyle = folderStyle.
				Foreground(accentColor).
				Bold(true)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	selectedRowStyle = rowStyle.
				Foreground(accentColor).
				Bold(true)

	unreadStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	summaryStyle = lipgloss.NewStyle().
			MarginTop(1).
			PaddingLeft(1).
			Foreground(primaryColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	eventButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(primaryColor)
)
