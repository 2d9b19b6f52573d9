package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/models"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.Local)

func testSnapshot(checkins models.CheckinTable, activeIDs []string, habitID string) Snapshot {
	return NewSnapshot(checkins, activeIDs, habitID, testNow)
}

func TestDayStatusAcrossHabits(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}

	tests := []struct {
		name       string
		entries    map[string]int
		wantStatus models.DayStatus
		wantOK     bool
	}{
		{"no entries is absent", nil, 0, false},
		{"all zero is none", map[string]int{"a": 0, "b": 0, "c": 0, "d": 0}, models.StatusNone, true},
		{"exactly 25 percent is low", map[string]int{"a": 1, "b": 0, "c": 0, "d": 0}, models.StatusLow, true},
		{"exactly 50 percent is medium", map[string]int{"a": 1, "b": 1, "c": 0, "d": 0}, models.StatusMedium, true},
		{"exactly 75 percent is high", map[string]int{"a": 1, "b": 1, "c": 1, "d": 0}, models.StatusHigh, true},
		{"all done is full", map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, models.StatusFull, true},
		{"partial entries only count recorded", map[string]int{"a": 1}, models.StatusFull, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkins := models.CheckinTable{}
			if tt.entries != nil {
				checkins["2024-03-10"] = tt.entries
			}
			snap := testSnapshot(checkins, ids, "")

			status, ok := snap.DayStatus("2024-03-10")
			if ok != tt.wantOK {
				t.Fatalf("DayStatus() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && status != tt.wantStatus {
				t.Errorf("DayStatus() = %v, want %v", status, tt.wantStatus)
			}
		})
	}
}

func TestDayStatusThirds(t *testing.T) {
	// 1/3 is ~33.3 percent, above the 25 boundary
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 1, "b": 0, "c": 0},
	}
	snap := testSnapshot(checkins, []string{"a", "b", "c"}, "")

	status, ok := snap.DayStatus("2024-03-10")
	if !ok || status != models.StatusMedium {
		t.Errorf("DayStatus(1 of 3) = %v, %v, want medium", status, ok)
	}

	// 2/3 is ~66.7 percent
	checkins["2024-03-10"]["b"] = 1
	status, ok = snap.DayStatus("2024-03-10")
	if !ok || status != models.StatusHigh {
		t.Errorf("DayStatus(2 of 3) = %v, %v, want high", status, ok)
	}
}

func TestDayStatusFutureIsAbsent(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-20": {"a": 1},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	if _, ok := snap.DayStatus("2024-03-20"); ok {
		t.Error("DayStatus() returned a status for a future date")
	}
	if snap.Success("2024-03-20") {
		t.Error("Success() = true for a future date")
	}
}

func TestDayStatusMalformedDate(t *testing.T) {
	snap := testSnapshot(models.CheckinTable{}, []string{"a"}, "")
	if _, ok := snap.DayStatus("03/10/2024"); ok {
		t.Error("DayStatus() returned a status for a malformed date")
	}
}

func TestDayStatusSingleHabit(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 1, "b": 0},
		"2024-03-11": {"a": 0, "b": 1},
		"2024-03-12": {"b": 1},
	}
	snap := testSnapshot(checkins, []string{"a", "b"}, "a")

	status, ok := snap.DayStatus("2024-03-10")
	if !ok || status != models.StatusFull {
		t.Errorf("DayStatus(done) = %v, %v, want full", status, ok)
	}

	status, ok = snap.DayStatus("2024-03-11")
	if !ok || status != models.StatusNone {
		t.Errorf("DayStatus(not done) = %v, %v, want none", status, ok)
	}

	// Other habits' records don't create a status for the filtered habit
	if _, ok := snap.DayStatus("2024-03-12"); ok {
		t.Error("DayStatus() returned a status with no record for the filtered habit")
	}
}

func TestDayStatusIgnoresInactiveHabits(t *testing.T) {
	// Records from deleted habits remain in the table but are out of scope
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 1, "deleted": 0},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	status, ok := snap.DayStatus("2024-03-10")
	if !ok || status != models.StatusFull {
		t.Errorf("DayStatus() = %v, %v, want full from the single active habit", status, ok)
	}
}

func TestSuccessTreatsAbsentLikeNone(t *testing.T) {
	checkins := models.CheckinTable{
		"2024-03-10": {"a": 0},
	}
	snap := testSnapshot(checkins, []string{"a"}, "")

	if snap.Success("2024-03-10") {
		t.Error("Success() = true for an all-zero day")
	}
	if snap.Success("2024-03-09") {
		t.Error("Success() = true for an absent day")
	}
}
