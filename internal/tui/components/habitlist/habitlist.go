package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifetrack/internal/models"
)

type AddHabitMsg struct{}

type RenameHabitMsg struct {
	Habit models.Habit
}

type DeleteHabitMsg struct {
	ID string
}

type MoveHabitMsg struct {
	ID string
	Up bool
}

type Item struct {
	Habit  models.Habit
	Streak int
}

func (i Item) Title() string {
	return i.Habit.Emoji + " " + i.Habit.Name
}

func (i Item) Description() string {
	if i.Streak == 1 {
		return "1 day streak"
	}
	return fmt.Sprintf("%d day streak", i.Streak)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Rename   key.Binding
	Delete   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Rename, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(keyMsg, m.keys.Rename):
			if item, ok := m.list.SelectedItem().(Item); ok {
				h := item.Habit
				return m, func() tea.Msg { return RenameHabitMsg{Habit: h} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.Delete):
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Habit.ID
				return m, func() tea.Msg { return DeleteHabitMsg{ID: id} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.MoveUp):
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Habit.ID
				return m, func() tea.Msg { return MoveHabitMsg{ID: id, Up: true} }
			}
			return m, nil
		case key.Matches(keyMsg, m.keys.MoveDown):
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Habit.ID
				return m, func() tea.Msg { return MoveHabitMsg{ID: id, Up: false} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetItems(items []Item) {
	selected := m.list.Index()
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}
	m.list.SetItems(listItems)
	if selected < len(listItems) {
		m.list.Select(selected)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
