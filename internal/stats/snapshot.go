// Package stats computes day statuses, period summaries, calendar grids and
// streaks from a frozen snapshot of the check-in ledger. Everything here is a
// pure read: nothing is cached and nothing is mutated.
package stats

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Snapshot freezes the inputs for a batch of queries: the ledger, the active
// habit id set as of the moment the caller built the snapshot, an optional
// single-habit filter, and the reference instant for today/future decisions.
// Passing a frozen id set (instead of consulting a live registry per call)
// keeps a query batch consistent while habits are being mutated.
type Snapshot struct {
	Checkins  models.CheckinTable
	ActiveIDs map[string]bool
	HabitID   string // when set, all queries collapse to this single habit
	Now       time.Time
}

// NewSnapshot builds a snapshot from the ledger and the active habit ids.
// habitID may be empty to query across the whole active set.
func NewSnapshot(checkins models.CheckinTable, activeIDs []string, habitID string, now time.Time) Snapshot {
	ids := make(map[string]bool, len(activeIDs))
	for _, id := range activeIDs {
		ids[id] = true
	}
	return Snapshot{
		Checkins:  checkins,
		ActiveIDs: ids,
		HabitID:   habitID,
		Now:       now,
	}
}

// DayStatus computes the graded status for the given date. The second return
// is false when there is no data at all for the relevant habit set, or the
// date is in the future, or the date string is malformed — the "absent"
// state, distinct from StatusNone.
func (s Snapshot) DayStatus(date string) (models.DayStatus, bool) {
	d, err := dateutil.ParseDate(date)
	if err != nil {
		return 0, false
	}
	// Future days never have a status, even if data exists for them.
	if dateutil.IsFuture(d, s.Now) {
		return 0, false
	}

	if s.HabitID != "" {
		v, ok := s.Checkins[date][s.HabitID]
		if !ok {
			return 0, false
		}
		if v == 1 {
			return models.StatusFull, true
		}
		return models.StatusNone, true
	}

	day := s.Checkins[date]
	done, total := 0, 0
	for id, v := range day {
		if !s.ActiveIDs[id] {
			continue
		}
		total++
		if v == 1 {
			done++
		}
	}
	if total == 0 {
		return 0, false
	}
	if done == 0 {
		return models.StatusNone, true
	}

	// Boundary ratios land in the lower bucket: exactly 25/50/75 percent are
	// low/medium/high respectively.
	ratio := float64(done) / float64(total) * 100
	switch {
	case ratio <= 25:
		return models.StatusLow, true
	case ratio <= 50:
		return models.StatusMedium, true
	case ratio <= 75:
		return models.StatusHigh, true
	default:
		return models.StatusFull, true
	}
}

// Success reports whether date counts as a streak success day: a status that
// exists and is not none. Absent days behave exactly like none here.
func (s Snapshot) Success(date string) bool {
	status, ok := s.DayStatus(date)
	return ok && status != models.StatusNone
}

// habitIDs returns the ids in scope: the single filtered habit, or every
// active id.
func (s Snapshot) habitIDs() []string {
	if s.HabitID != "" {
		return []string{s.HabitID}
	}
	ids := make([]string, 0, len(s.ActiveIDs))
	for id := range s.ActiveIDs {
		ids = append(ids, id)
	}
	return ids
}
