package stats

import (
	"fmt"
	"testing"

	"github.com/julianstephens/lifetrack/internal/models"
)

func TestCurrentStreak(t *testing.T) {
	// now is 2024-03-15
	tests := []struct {
		name     string
		checkins models.CheckinTable
		want     int
	}{
		{
			name:     "no data",
			checkins: models.CheckinTable{},
			want:     0,
		},
		{
			name: "two consecutive days ending yesterday",
			checkins: models.CheckinTable{
				"2024-03-13": {"a": 1},
				"2024-03-14": {"a": 1},
			},
			want: 2,
		},
		{
			name: "today alone does not count",
			checkins: models.CheckinTable{
				"2024-03-15": {"a": 1},
			},
			want: 0,
		},
		{
			name: "gap before yesterday breaks the run",
			checkins: models.CheckinTable{
				"2024-03-11": {"a": 1},
				"2024-03-12": {"a": 1},
				"2024-03-14": {"a": 1},
			},
			want: 1,
		},
		{
			name: "all-zero yesterday breaks immediately",
			checkins: models.CheckinTable{
				"2024-03-13": {"a": 1},
				"2024-03-14": {"a": 0},
			},
			want: 0,
		},
		{
			name: "run crosses a month boundary",
			checkins: models.CheckinTable{
				"2024-02-28": {"a": 1},
				"2024-02-29": {"a": 1},
				"2024-03-01": {"a": 1},
				"2024-03-02": {"a": 1},
				"2024-03-03": {"a": 1},
				"2024-03-04": {"a": 1},
				"2024-03-05": {"a": 1},
				"2024-03-06": {"a": 1},
				"2024-03-07": {"a": 1},
				"2024-03-08": {"a": 1},
				"2024-03-09": {"a": 1},
				"2024-03-10": {"a": 1},
				"2024-03-11": {"a": 1},
				"2024-03-12": {"a": 1},
				"2024-03-13": {"a": 1},
				"2024-03-14": {"a": 1},
			},
			want: 16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testSnapshot(tt.checkins, []string{"a"}, "")
			if got := snap.CurrentStreak(); got != tt.want {
				t.Errorf("CurrentStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakInMonth(t *testing.T) {
	// now is 2024-03-15: days 15..31 of March are today or future and are
	// skipped without breaking the run
	checkins := models.CheckinTable{
		"2024-03-12": {"a": 1},
		"2024-03-13": {"a": 1},
		"2024-03-14": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	if got := snap.CurrentStreakInMonth(2024, 2); got != 3 {
		t.Errorf("CurrentStreakInMonth() = %d, want 3", got)
	}

	// A completed month counts back from its last day
	feb := models.CheckinTable{
		"2024-02-27": {"a": 1},
		"2024-02-28": {"a": 1},
		"2024-02-29": {"a": 1},
	}
	snap = testSnapshot(feb, []string{"a"}, "")
	if got := snap.CurrentStreakInMonth(2024, 1); got != 3 {
		t.Errorf("CurrentStreakInMonth(completed month) = %d, want 3", got)
	}

	// A miss on the last day of a completed month zeroes it
	feb["2024-02-29"] = map[string]int{"a": 0}
	if got := snap.CurrentStreakInMonth(2024, 1); got != 0 {
		t.Errorf("CurrentStreakInMonth(miss on last day) = %d, want 0", got)
	}
}

func TestBestStreakInMonth(t *testing.T) {
	// Ten straight days in leap-year February, then a shorter run
	checkins := models.CheckinTable{}
	for day := 1; day <= 10; day++ {
		checkins[formatFebDay(day)] = map[string]int{"a": 1}
	}
	checkins["2024-02-20"] = map[string]int{"a": 1}
	checkins["2024-02-21"] = map[string]int{"a": 1}

	snap := testSnapshot(checkins, []string{"a"}, "")
	if got := snap.BestStreakInMonth(2024, 1); got != 10 {
		t.Errorf("BestStreakInMonth() = %d, want 10", got)
	}
}

func TestBestStreakInMonthTodayExemption(t *testing.T) {
	// now is 2024-03-15 with nothing recorded today: the run through
	// yesterday survives
	checkins := models.CheckinTable{
		"2024-03-13": {"a": 1},
		"2024-03-14": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	if got := snap.BestStreakInMonth(2024, 2); got != 2 {
		t.Errorf("BestStreakInMonth() = %d, want 2 (today must not reset)", got)
	}
}

func TestBestStreakInMonthResetOnMiss(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-01": {"a": 1},
		"2024-03-02": {"a": 1},
		"2024-03-03": {"a": 1},
		"2024-03-04": {"a": 0},
		"2024-03-05": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	if got := snap.BestStreakInMonth(2024, 2); got != 3 {
		t.Errorf("BestStreakInMonth() = %d, want 3", got)
	}
}

func formatFebDay(day int) string {
	return fmt.Sprintf("2024-02-%02d", day)
}
