package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

func testState() State {
	deleted := time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
	return State{
		Habits: []models.Habit{
			{ID: "h1", Name: "Sleep", Emoji: "🛌", SortOrder: 0, CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "h2", Name: "Old", Emoji: "🗑", SortOrder: 1, CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), DeletedAt: &deleted},
		},
		Checkins: models.CheckinTable{
			"2024-03-10": {"h1": 1, "h2": 0},
			"2024-03-11": {"h1": 0},
		},
	}
}

// verifyState checks a loaded state against testState, storage-agnostic.
func verifyState(t *testing.T, state State) {
	t.Helper()

	if len(state.Habits) != 2 {
		t.Fatalf("loaded %d habits, want 2", len(state.Habits))
	}
	if state.Habits[0].ID != "h1" || state.Habits[0].Name != "Sleep" || state.Habits[0].Emoji != "🛌" {
		t.Errorf("habit 0 = %+v", state.Habits[0])
	}
	if state.Habits[1].DeletedAt == nil {
		t.Error("soft-deleted habit lost its deletion timestamp")
	}

	// Zero-valued entries must survive, distinct from absent ones
	if v, ok := state.Checkins["2024-03-10"]["h2"]; !ok || v != 0 {
		t.Errorf("explicit zero entry = %d, %v, want 0, true", v, ok)
	}
	if v := state.Checkins["2024-03-10"]["h1"]; v != 1 {
		t.Errorf("done entry = %d, want 1", v)
	}
	if _, ok := state.Checkins["2024-03-11"]["h2"]; ok {
		t.Error("absent entry materialized on load")
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifetrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := store.Save(testState()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Reload through a fresh store instance
	loaded, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	verifyState(t, loaded)
}

func TestJSONStoreDropsEmptyDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifetrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	state := testState()
	state.Checkins["2024-03-12"] = map[string]int{}
	if err := store.Save(state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := loaded.Checkins["2024-03-12"]; ok {
		t.Error("empty date key survived the round-trip")
	}
	// Days with entries are untouched
	if _, ok := loaded.Checkins["2024-03-10"]; !ok {
		t.Error("populated date key lost while dropping empty ones")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load() error = %v, want ErrNotInitialized", err)
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifetrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() should fail")
	}
}

func TestJSONStoreInitCreatesEmptyState(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "lifetrack.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Habits) != 0 || len(state.Checkins) != 0 {
		t.Errorf("fresh state = %+v, want empty", state)
	}
	if state.Habits == nil || state.Checkins == nil {
		t.Error("collections should be initialized, not nil")
	}
}
