package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/dateutil"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateMonth:
		content = m.viewMonth()
	case StateHabits:
		content = m.viewHabits()
	case StateAddHabit, StateRenameHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMessage != "" {
		sections = append(sections, subtleStyle.Render(m.statusMessage))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Month", "Habits"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	now := time.Now()
	snap := m.snapshot("")
	date := dateutil.FormatDate(now)

	header := titleStyle.Render(now.Format("Monday, January 2"))
	if status, ok := snap.DayStatus(date); ok {
		header += subtleStyle.Render("  " + status.String())
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.checkinModel.View()))
}

func (m Model) viewMonth() string {
	snap := m.snapshot("")
	first := dateutil.MakeDate(m.monthYear, m.monthMonth, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render(first.Format("January 2006")))
	b.WriteString("\n\n")
	b.WriteString("  Mo  Tu  We  Th  Fr  Sa  Su\n")

	cells := snap.MonthGrid(m.monthYear, m.monthMonth)
	for i, cell := range cells {
		if cell == nil {
			b.WriteString("    ")
		} else {
			label := fmt.Sprintf("%4d", cell.Day)
			switch {
			case cell.IsToday:
				b.WriteString(todayDayStyle.Render(label))
			case !cell.HasStatus:
				b.WriteString(absentDayStyle.Render(label))
			default:
				b.WriteString(statusDayStyles[cell.Status].Render(label))
			}
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	summary := snap.MonthSummary(m.monthYear, m.monthMonth)
	if r, ok := summary.Rate(); ok {
		b.WriteString(fmt.Sprintf("Rate %d%%  ", int(r+0.5)))
	}
	b.WriteString(fmt.Sprintf("Streak %d  Best %d",
		snap.CurrentStreakInMonth(m.monthYear, m.monthMonth),
		snap.BestStreakInMonth(m.monthYear, m.monthMonth)))

	return docStyle.Render(b.String())
}

func (m Model) viewHabits() string {
	return docStyle.Render(m.habitsModel.View())
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			fmt.Sprintf("Delete habit %s?", m.deletingName),
			subtleStyle.Render("Its check-in history will be kept."),
			"",
			"[y] yes    [n] no",
		),
	)
}
