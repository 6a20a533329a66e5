package tui

import (
	"github.com/charmbracelet/lipgloss"

	"moodmatrix/internal/models"
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	successNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	infoNoticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	warningNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorNoticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// accentStyle derives a highlight style from the active theme's primary
// color, so the selected theme is visible in the terminal too.
func accentStyle(theme models.AppTheme) lipgloss.Style {
	option, ok := models.LookupTheme(theme)
	if !ok {
		return titleStyle
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(option.PrimaryColor))
}
