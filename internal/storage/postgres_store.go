package storage

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/lifetrack/internal/models"
)

const postgresSchema = `
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

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password inline, either URL-style or DSN-style. Credentials
// belong in the environment or the OS keyring, never in the config value.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) Load() (State, error) {
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
		// A missing table means init was never run against this database
		if strings.Contains(err.Error(), "does not exist") {
			return State{}, ErrNotInitialized
		}
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

func (s *PostgresStore) Save(state State) error {
	if err := s.open(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM checkins"); err != nil {
		return err
	}

	hstmt, err := tx.Prepare(`
		INSERT INTO habits (id, name, emoji, sort_order, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6)`)
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

	cstmt, err := tx.Prepare(`INSERT INTO checkins (day, habit_id, done) VALUES ($1, $2, $3)`)
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

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}

func (s *PostgresStore) GetDB() *sql.DB {
	return s.db
}
