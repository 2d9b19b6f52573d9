package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/tui/components/checkin"
	"github.com/julianstephens/lifetrack/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.checkinModel.SetSize(msg.Width-h, msg.Height-v-4)
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-4)

	case checkin.ToggleMsg:
		today := dateutil.FormatDate(time.Now())
		if err := m.tracker.ToggleCheckin(msg.HabitID, today); err != nil {
			m.statusMessage = err.Error()
			return m, nil
		}
		m.statusMessage = ""
		m.refreshLists()
		return m, nil

	case habitlist.AddHabitMsg:
		m.startAddHabit()
		return m, m.form.Init()

	case habitlist.RenameHabitMsg:
		m.startRenameHabit(msg.Habit)
		return m, m.form.Init()

	case habitlist.DeleteHabitMsg:
		h, err := m.tracker.GetHabit(msg.ID)
		if err != nil {
			m.statusMessage = err.Error()
			return m, nil
		}
		m.deletingID = h.ID
		m.deletingName = h.Emoji + " " + h.Name
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.MoveHabitMsg:
		if err := m.moveHabit(msg.ID, msg.Up); err != nil {
			m.statusMessage = err.Error()
			return m, nil
		}
		m.statusMessage = ""
		m.refreshLists()
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateRenameHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateMonth {
			switch {
			case key.Matches(keyMsg, m.keys.PrevMonth):
				m.prevMonth()
				return m, nil
			case key.Matches(keyMsg, m.keys.NextMonth):
				m.nextMonth()
				return m, nil
			case key.Matches(keyMsg, m.keys.Today):
				now := time.Now()
				m.monthYear = now.Year()
				m.monthMonth = int(now.Month()) - 1
				return m, nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.checkinModel, cmd = m.checkinModel.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		m.habitForm = nil
		m.renamingHabit = nil
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		var err error
		if m.state == StateRenameHabit && m.renamingHabit != nil {
			err = m.tracker.UpdateHabit(m.renamingHabit.ID, m.habitForm.Name, m.habitForm.Emoji)
		} else {
			_, err = m.tracker.AddHabit(m.habitForm.Name, m.habitForm.Emoji)
		}
		if err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = ""
		}
		m.form = nil
		m.habitForm = nil
		m.renamingHabit = nil
		m.state = m.previousState
		m.refreshLists()
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteHabit(m.deletingID); err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = ""
		}
		m.deletingID = ""
		m.deletingName = ""
		m.state = m.previousState
		m.refreshLists()
	case "n", "N", "esc":
		m.deletingID = ""
		m.deletingName = ""
		m.state = m.previousState
	}
	return m, nil
}
