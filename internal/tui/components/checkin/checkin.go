package checkin

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ToggleMsg asks the parent model to flip today's check-in for a habit.
type ToggleMsg struct {
	HabitID string
}

type Item struct {
	Habit models.Habit
	Done  bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return mark + " " + i.Habit.Emoji + " " + i.Habit.Name
}

func (i Item) Description() string {
	if i.Done {
		return "done today"
	}
	return "not done yet"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type Model struct {
	list   list.Model
	toggle key.Binding
}

func New(items []Item, width, height int) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally by the main model

	toggle := key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "toggle"),
	)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{toggle}
	}

	return Model{list: l, toggle: toggle}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.toggle) {
			if item, ok := m.list.SelectedItem().(Item); ok {
				id := item.Habit.ID
				return m, func() tea.Msg { return ToggleMsg{HabitID: id} }
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

// SetItems replaces the list contents, keeping the current selection
// where possible.
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
