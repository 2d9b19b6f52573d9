package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/stats"
	"github.com/julianstephens/lifetrack/internal/tracker"
	"github.com/julianstephens/lifetrack/internal/tui/components/checkin"
	"github.com/julianstephens/lifetrack/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateMonth
	StateHabits
	StateAddHabit
	StateRenameHabit
	StateConfirmDelete
)

// tabCount covers the states reachable by tab cycling
const tabCount = 3

type HabitFormModel struct {
	Name  string
	Emoji string
}

type Model struct {
	tracker       *tracker.Tracker
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	checkinModel checkin.Model
	habitsModel  habitlist.Model

	// month view cursor, month is zero-based
	monthYear  int
	monthMonth int

	form          *huh.Form
	habitForm     *HabitFormModel
	renamingHabit *models.Habit
	deletingID    string
	deletingName  string
	statusMessage string
	width         int
	height        int
	quitting      bool
}

func NewModel(t *tracker.Tracker) Model {
	now := time.Now()
	m := Model{
		tracker:    t,
		state:      StateToday,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		monthYear:  now.Year(),
		monthMonth: int(now.Month()) - 1,
	}
	m.checkinModel = checkin.New(m.checkinItems(), 0, 0)
	m.habitsModel = habitlist.New(m.habitItems(), 0, 0)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// snapshot freezes the current check-in data for rendering
func (m Model) snapshot(habitID string) stats.Snapshot {
	return stats.NewSnapshot(m.tracker.Checkins(), m.tracker.ActiveIDs(), habitID, time.Now())
}

func (m Model) checkinItems() []checkin.Item {
	today := dateutil.FormatDate(time.Now())
	habits := m.tracker.ActiveHabits()
	items := make([]checkin.Item, len(habits))
	for i, h := range habits {
		items[i] = checkin.Item{
			Habit: h,
			Done:  m.tracker.CheckinValue(h.ID, today) == 1,
		}
	}
	return items
}

func (m Model) habitItems() []habitlist.Item {
	habits := m.tracker.ActiveHabits()
	items := make([]habitlist.Item, len(habits))
	for i, h := range habits {
		items[i] = habitlist.Item{
			Habit:  h,
			Streak: m.snapshot(h.ID).CurrentStreak(),
		}
	}
	return items
}

// refreshLists rebuilds both list components after a data change
func (m *Model) refreshLists() {
	m.checkinModel.SetItems(m.checkinItems())
	m.habitsModel.SetItems(m.habitItems())
}

func (m *Model) startAddHabit() {
	m.habitForm = &HabitFormModel{Emoji: "✅"}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				CharLimit(20).
				Value(&m.habitForm.Name),
			huh.NewInput().
				Title("Emoji").
				CharLimit(4).
				Value(&m.habitForm.Emoji),
		),
	)
	m.previousState = m.state
	m.state = StateAddHabit
}

func (m *Model) startRenameHabit(h models.Habit) {
	m.renamingHabit = &h
	m.habitForm = &HabitFormModel{Name: h.Name, Emoji: h.Emoji}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				CharLimit(20).
				Value(&m.habitForm.Name),
			huh.NewInput().
				Title("Emoji").
				CharLimit(4).
				Value(&m.habitForm.Emoji),
		),
	)
	m.previousState = m.state
	m.state = StateRenameHabit
}

// moveHabit swaps a habit with its neighbor in the active ordering
func (m *Model) moveHabit(id string, up bool) error {
	active := m.tracker.ActiveHabits()
	idx := -1
	for i, h := range active {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	swap := idx - 1
	if !up {
		swap = idx + 1
	}
	if swap < 0 || swap >= len(active) {
		return nil
	}

	ids := make([]string, len(active))
	for i, h := range active {
		ids[i] = h.ID
	}
	ids[idx], ids[swap] = ids[swap], ids[idx]
	return m.tracker.Reorder(ids)
}

func (m *Model) prevMonth() {
	m.monthMonth--
	if m.monthMonth < 0 {
		m.monthMonth = 11
		m.monthYear--
	}
}

func (m *Model) nextMonth() {
	m.monthMonth++
	if m.monthMonth > 11 {
		m.monthMonth = 0
		m.monthYear++
	}
}
