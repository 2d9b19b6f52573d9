package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	emoji TEXT NOT NULL,
	sort_order INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	deleted_at TEXT
);

CREATE TABLE IF NOT EXISTS checkins (
	day TEXT NOT NULL,
	habit_id TEXT NOT NULL,
	done INTEGER NOT NULL,
	PRIMARY KEY (day, habit_id)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return ErrNotInitialized
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load() (State, error) {
	if err := s.open(); err != nil {
		return State{}, err
	}

	state := State{
		Habits:   []models.Habit{},
		Checkins: models.CheckinTable{},
	}

	rows, err := s.db.Query(`
		SELECT id, name, emoji, sort_order, created_at, deleted_at
		FROM habits ORDER BY sort_order, created_at`)
	if err != nil {
		return State{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var createdAt string
		var deletedAt sql.NullString

		if err := rows.Scan(&h.ID, &h.Name, &h.Emoji, &h.SortOrder, &createdAt, &deletedAt); err != nil {
			return State{}, err
		}

		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return State{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}
		if deletedAt.Valid {
			t, err := time.Parse(time.RFC3339, deletedAt.String)
			if err != nil {
				return State{}, fmt.Errorf("failed to parse deleted_at for habit %s: %w", h.ID, err)
			}
			h.DeletedAt = &t
		}

		state.Habits = append(state.Habits, h)
	}
	if err := rows.Err(); err != nil {
		return State{}, err
	}

	crows, err := s.db.Query(`SELECT day, habit_id, done FROM checkins`)
	if err != nil {
		return State{}, err
	}
	defer crows.Close()

	for crows.Next() {
		var day, habitID string
		var done int
		if err := crows.Scan(&day, &habitID, &done); err != nil {
			return State{}, err
		}
		if state.Checkins[day] == nil {
			state.Checkins[day] = map[string]int{}
		}
		state.Checkins[day][habitID] = done
	}
	if err := crows.Err(); err != nil {
		return State{}, err
	}

	return state, nil
}

func (s *SQLiteStore) Save(state State) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Full snapshot replace, same shape as the JSON store
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM checkins"); err != nil {
		return err
	}

	hstmt, err := tx.Prepare(`
		INSERT INTO habits (id, name, emoji, sort_order, created_at, deleted_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer hstmt.Close()

	for _, h := range state.Habits {
		var deletedAt sql.NullString
		if h.DeletedAt != nil {
			deletedAt = sql.NullString{String: h.DeletedAt.Format(time.RFC3339), Valid: true}
		}
		if _, err := hstmt.Exec(h.ID, h.Name, h.Emoji, h.SortOrder, h.CreatedAt.Format(time.RFC3339), deletedAt); err != nil {
			return err
		}
	}

	cstmt, err := tx.Prepare(`INSERT INTO checkins (day, habit_id, done) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cstmt.Close()

	for day, entries := range state.Checkins {
		for habitID, done := range entries {
			if _, err := cstmt.Exec(day, habitID, done); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
