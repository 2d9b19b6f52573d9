package storage

import (
	"errors"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ErrNotInitialized is returned by Load when the backing store has never been
// created. Callers fall back to a seeded default state.
var ErrNotInitialized = errors.New("storage not initialized, run 'lifetrack init' first")

// State is the full persisted snapshot: every habit (including soft-deleted
// ones) and the complete check-in table.
type State struct {
	Habits   []models.Habit      `json:"habits"`
	Checkins models.CheckinTable `json:"checkins"`
}

type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Snapshot round-trip. Save replaces the whole snapshot; Load returns
	// ErrNotInitialized when nothing has been stored yet. Date keys with
	// no entries are normalized away on save: an empty day is equivalent
	// to no record for that day, and no provider persists one.
	Load() (State, error)
	Save(State) error

	// Utils
	GetConfigPath() string
}
