// Package tracker owns the habit registry and the check-in ledger. All
// mutations go through it and are persisted to the configured storage
// provider; analytics are computed separately, from a frozen snapshot of
// this state.
//
// Concurrency note:
//   - Tracker is not safe for concurrent use by multiple goroutines without
//     external synchronization. Mutations are expected to arrive serially
//     from a single command or UI loop.
package tracker

import (
	stderrors "errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Tracker struct {
	habits   []models.Habit
	checkins models.CheckinTable
	store    storage.Provider
	onChange func()
	now      func() time.Time
}

// New loads the persisted state from store. A store that was initialized but
// never written to is seeded with the default habit set; a store that was
// never initialized surfaces a PersistenceError so the caller can point the
// user at 'lifetrack init'.
func New(store storage.Provider) (*Tracker, error) {
	t := &Tracker{
		store:    store,
		checkins: models.CheckinTable{},
		now:      time.Now,
	}

	state, err := store.Load()
	if err != nil {
		if stderrors.Is(err, storage.ErrNotInitialized) {
			return nil, errors.Persistence("load", err)
		}
		// Corrupt or unreadable state: fall back to seeded defaults rather
		// than a partially-loaded registry.
		logger.Warn("Failed to load state, starting from seeded defaults", "error", err)
		t.seedDefaults()
		return t, nil
	}

	t.habits = state.Habits
	if state.Checkins != nil {
		t.checkins = state.Checkins
	}
	if len(t.habits) == 0 {
		t.seedDefaults()
		if err := t.save(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// SetOnChange registers a callback invoked after every successful mutation.
func (t *Tracker) SetOnChange(fn func()) {
	t.onChange = fn
}

// SetClock overrides the time source, for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *Tracker) seedDefaults() {
	defaults := []struct {
		emoji string
		name  string
	}{
		{"🛌", "Sleep"},
		{"🚴", "Activity"},
		{"🥗", "Nutrition"},
		{"🧠", "Mind"},
		{"💻", "Projects"},
	}
	t.habits = make([]models.Habit, 0, len(defaults))
	for i, d := range defaults {
		t.habits = append(t.habits, models.Habit{
			ID:        uuid.New().String(),
			Name:      d.name,
			Emoji:     d.emoji,
			SortOrder: i,
			CreatedAt: t.now(),
		})
	}
}

func (t *Tracker) save() error {
	err := t.store.Save(storage.State{
		Habits:   t.habits,
		Checkins: t.checkins,
	})
	if err != nil {
		return errors.Persistence("save", err)
	}
	if t.onChange != nil {
		t.onChange()
	}
	return nil
}

// ActiveHabits returns non-deleted habits ordered by sort order.
func (t *Tracker) ActiveHabits() []models.Habit {
	var active []models.Habit
	for _, h := range t.habits {
		if !h.IsDeleted() {
			active = append(active, h)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})
	return active
}

// ActiveIDs returns the ids of the active habits, in display order.
func (t *Tracker) ActiveIDs() []string {
	active := t.ActiveHabits()
	ids := make([]string, len(active))
	for i, h := range active {
		ids[i] = h.ID
	}
	return ids
}

// AllHabits returns every habit: active first by sort order, then deleted
// ones in their stored order.
func (t *Tracker) AllHabits() []models.Habit {
	all := make([]models.Habit, len(t.habits))
	copy(all, t.habits)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].IsDeleted() != all[j].IsDeleted() {
			return !all[i].IsDeleted()
		}
		if all[i].IsDeleted() {
			return false
		}
		return all[i].SortOrder < all[j].SortOrder
	})
	return all
}

// GetHabit returns the habit with the given id, deleted or not.
func (t *Tracker) GetHabit(id string) (models.Habit, error) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, errors.NotFound("habit", id)
}

// FindHabitByName returns the active habit with the given name.
func (t *Tracker) FindHabitByName(name string) (models.Habit, error) {
	for _, h := range t.ActiveHabits() {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, errors.NotFound("habit", name)
}

// AddHabit appends a new habit after the current active ones. The trimmed
// name must be 1-20 characters and the active-habit count may not exceed 10.
func (t *Tracker) AddHabit(name, emoji string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, errors.Validationf("habit name cannot be empty")
	}
	if len([]rune(name)) > constants.MaxHabitNameLen {
		return models.Habit{}, errors.Validationf("habit name cannot exceed %d characters", constants.MaxHabitNameLen)
	}

	active := t.ActiveHabits()
	if len(active) >= constants.MaxActiveHabits {
		return models.Habit{}, errors.Validationf("cannot have more than %d active habits", constants.MaxActiveHabits)
	}

	maxOrder := -1
	for _, h := range active {
		if h.SortOrder > maxOrder {
			maxOrder = h.SortOrder
		}
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Emoji:     emoji,
		SortOrder: maxOrder + 1,
		CreatedAt: t.now(),
	}
	t.habits = append(t.habits, habit)

	if err := t.save(); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit renames an active habit in place. Sort order and check-in
// history are untouched.
func (t *Tracker) UpdateHabit(id, name, emoji string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.Validationf("habit name cannot be empty")
	}
	if len([]rune(name)) > constants.MaxHabitNameLen {
		return errors.Validationf("habit name cannot exceed %d characters", constants.MaxHabitNameLen)
	}

	for i := range t.habits {
		if t.habits[i].ID == id && !t.habits[i].IsDeleted() {
			t.habits[i].Name = name
			t.habits[i].Emoji = emoji
			return t.save()
		}
	}
	return errors.NotFound("habit", id)
}

// DeleteHabit soft-deletes a habit. Its check-in history is retained.
// Deleting an unknown or already-deleted id is an error.
func (t *Tracker) DeleteHabit(id string) error {
	for i := range t.habits {
		if t.habits[i].ID == id && !t.habits[i].IsDeleted() {
			now := t.now()
			t.habits[i].DeletedAt = &now
			return t.save()
		}
	}
	return errors.NotFound("habit", id)
}

// Reorder reassigns sort order 0..N-1 following ids, which must be exactly a
// permutation of the current active habit ids. On a mismatch nothing is
// mutated.
func (t *Tracker) Reorder(ids []string) error {
	active := t.ActiveHabits()
	if len(ids) != len(active) {
		return errors.Validationf("reorder set must contain exactly the %d active habit ids", len(active))
	}

	current := make(map[string]bool, len(active))
	for _, h := range active {
		current[h.ID] = true
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !current[id] {
			return errors.Validationf("reorder set contains unknown habit id: %s", id)
		}
		if seen[id] {
			return errors.Validationf("reorder set contains duplicate habit id: %s", id)
		}
		seen[id] = true
	}

	order := make(map[string]int, len(ids))
	for i, id := range ids {
		order[id] = i
	}
	for i := range t.habits {
		if pos, ok := order[t.habits[i].ID]; ok {
			t.habits[i].SortOrder = pos
		}
	}
	return t.save()
}

// CheckinValue returns 1 if the habit was recorded done on date, 0 otherwise.
// Absence defaults to 0; use HasEntry to distinguish "recorded as not done"
// from "never recorded".
func (t *Tracker) CheckinValue(habitID, date string) int {
	return t.checkins[date][habitID]
}

// HasEntry reports whether an explicit check-in record exists.
func (t *Tracker) HasEntry(habitID, date string) bool {
	_, ok := t.checkins[date][habitID]
	return ok
}

// ToggleCheckin flips the check-in for a habit on a date. A missing entry
// toggles to done.
func (t *Tracker) ToggleCheckin(habitID, date string) error {
	day := t.checkins[date]
	if day == nil {
		day = map[string]int{}
		t.checkins[date] = day
	}
	if day[habitID] == 1 {
		day[habitID] = 0
	} else {
		day[habitID] = 1
	}
	return t.save()
}

// SetCheckin upserts a single habit's boolean for a date.
func (t *Tracker) SetCheckin(habitID, date string, done bool) error {
	day := t.checkins[date]
	if day == nil {
		day = map[string]int{}
		t.checkins[date] = day
	}
	if done {
		day[habitID] = 1
	} else {
		day[habitID] = 0
	}
	return t.save()
}

// SetDay upserts the given habits' booleans for one date. Habits omitted from
// values keep their existing entries.
func (t *Tracker) SetDay(date string, values map[string]bool) error {
	day := t.checkins[date]
	if day == nil {
		day = map[string]int{}
		t.checkins[date] = day
	}
	for habitID, done := range values {
		if done {
			day[habitID] = 1
		} else {
			day[habitID] = 0
		}
	}
	return t.save()
}

// Checkins exposes the ledger for read-only snapshotting by the analytics
// engine. Callers must not mutate it.
func (t *Tracker) Checkins() models.CheckinTable {
	return t.checkins
}
