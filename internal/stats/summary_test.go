package stats

import (
	"testing"

	"github.com/julianstephens/lifetrack/internal/models"
)

func TestRateNoData(t *testing.T) {
	var s Summary
	if _, ok := s.Rate(); ok {
		t.Error("Rate() ok = true with nothing tracked")
	}

	s = Summary{Done: 3, Tracked: 4}
	r, ok := s.Rate()
	if !ok || r != 75 {
		t.Errorf("Rate() = %v, %v, want 75, true", r, ok)
	}
}

func TestMonthSummaryCountsEntries(t *testing.T) {
	// Entry-level accumulation: each recorded (habit, day) pair counts once.
	// The entry under a non-active id must not count at all.
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 1, "b": 0},
		"2024-03-11": {"a": 1},
		"2024-03-12": {"b": 1, "deleted": 1},
	}
	snap := testSnapshot(checkins, []string{"a", "b"}, "")

	sum := snap.MonthSummary(2024, 2)
	if sum.Tracked != 4 || sum.Done != 3 {
		t.Errorf("MonthSummary() = %+v, want Done 3 Tracked 4", sum)
	}
}

func TestMonthSummarySkipsFutureDays(t *testing.T) {
	// now is 2024-03-15; records past it are ignored
	checkins := models.CheckinTable{
		"2024-03-14": {"a": 1},
		"2024-03-20": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	sum := snap.MonthSummary(2024, 2)
	if sum.Tracked != 1 || sum.Done != 1 {
		t.Errorf("MonthSummary() = %+v, want Done 1 Tracked 1", sum)
	}
}

func TestMonthSummaryIncludesToday(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-15": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	sum := snap.MonthSummary(2024, 2)
	if sum.Tracked != 1 || sum.Done != 1 {
		t.Errorf("MonthSummary() = %+v, want today's entry included", sum)
	}
}

func TestMonthSummarySingleHabit(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 1, "b": 1},
		"2024-03-11": {"a": 0, "b": 1},
	}
	snap := testSnapshot(checkins, []string{"a", "b"}, "a")

	sum := snap.MonthSummary(2024, 2)
	if sum.Tracked != 2 || sum.Done != 1 {
		t.Errorf("MonthSummary(habit a) = %+v, want Done 1 Tracked 2", sum)
	}
}

func TestYearTotals(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-01-10": {"a": 1, "b": 1}, // full
		"2024-01-11": {"a": 1, "b": 0}, // medium
		"2024-01-12": {"a": 0, "b": 0}, // none
		"2024-02-01": {"a": 1},         // full (only entry counts)
	}
	snap := testSnapshot(checkins, []string{"a", "b"}, "")

	done, perfect, tracked := snap.YearTotals(2024)
	if tracked != 4 {
		t.Errorf("YearTotals() tracked = %d, want 4", tracked)
	}
	if done != 3 {
		t.Errorf("YearTotals() done = %d, want 3", done)
	}
	if perfect != 2 {
		t.Errorf("YearTotals() perfect = %d, want 2", perfect)
	}
}

func TestYearSummaryEmpty(t *testing.T) {
	snap := testSnapshot(models.CheckinTable{}, []string{"a"}, "")
	sum := snap.YearSummary(2024)
	if sum.Tracked != 0 {
		t.Errorf("YearSummary() tracked = %d, want 0", sum.Tracked)
	}
}
