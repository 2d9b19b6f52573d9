package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lifetrack/internal/models"
)

type jsonFile struct {
	Version  int                 `json:"version"`
	Habits   []models.Habit      `json:"habits"`
	Checkins models.CheckinTable `json:"checkins"`
}

type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(jsonFile{
		Version:  1,
		Habits:   []models.Habit{},
		Checkins: models.CheckinTable{},
	})
}

func (s *JSONStore) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, ErrNotInitialized
		}
		return State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var f jsonFile
	if err := json.Unmarshal(data, &f); err != nil {
		return State{}, fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if f.Habits == nil {
		f.Habits = []models.Habit{}
	}
	if f.Checkins == nil {
		f.Checkins = models.CheckinTable{}
	}

	return State{Habits: f.Habits, Checkins: f.Checkins}, nil
}

func (s *JSONStore) Save(state State) error {
	// Empty days never persist, matching the row-per-entry SQL stores
	checkins := make(models.CheckinTable, len(state.Checkins))
	for day, entries := range state.Checkins {
		if len(entries) > 0 {
			checkins[day] = entries
		}
	}

	return s.write(jsonFile{
		Version:  1,
		Habits:   state.Habits,
		Checkins: checkins,
	})
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) write(f jsonFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
