package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/models"
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

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	absentDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	todayDayStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	statusDayStyles = map[models.DayStatus]lipgloss.Style{
		models.StatusNone:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		models.StatusLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("58")),
		models.StatusMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("100")),
		models.StatusHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("107")),
		models.StatusFull:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}
)
