package models

import "time"

// Habit represents a recurring daily practice to track
type Habit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Emoji     string     `json:"emoji"`
	SortOrder int        `json:"sort_order"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// IsDeleted reports whether the habit has been soft-deleted.
func (h Habit) IsDeleted() bool {
	return h.DeletedAt != nil
}
