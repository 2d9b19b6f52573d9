package stats

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Summary accumulates explicit check-in entries over a date range: Tracked
// counts recorded (habit, day) pairs, Done the subset recorded as done.
type Summary struct {
	Done    int
	Tracked int
}

// Rate returns Done/Tracked as a percentage. The second return is false when
// nothing was tracked, the "no data" case rendered as a dash.
func (s Summary) Rate() (float64, bool) {
	if s.Tracked == 0 {
		return 0, false
	}
	return float64(s.Done) / float64(s.Tracked) * 100, true
}

// Summarize accumulates entries day by day over [from, to]. Future days are
// skipped; today is included even though its data is usually incomplete.
func (s Snapshot) Summarize(from, to time.Time) Summary {
	var sum Summary
	ids := s.habitIDs()
	for d := dateutil.StartOfDay(from); !d.After(to); d = dateutil.AddDays(d, 1) {
		if dateutil.IsFuture(d, s.Now) {
			continue
		}
		day := s.Checkins[dateutil.FormatDate(d)]
		for _, id := range ids {
			v, ok := day[id]
			if !ok {
				continue
			}
			sum.Tracked++
			if v == 1 {
				sum.Done++
			}
		}
	}
	return sum
}

// MonthSummary accumulates entries for the given zero-based month.
func (s Snapshot) MonthSummary(year, month int) Summary {
	first := dateutil.MakeDate(year, month, 1)
	last := dateutil.MakeDate(year, month, dateutil.DaysInMonth(year, month))
	return s.Summarize(first, last)
}

// YearSummary accumulates entries for the whole year.
func (s Snapshot) YearSummary(year int) Summary {
	return s.Summarize(dateutil.MakeDate(year, 0, 1), dateutil.MakeDate(year, 11, 31))
}

// YearTotals counts days over the year by status: tracked days (any status),
// done days (status above none) and perfect days (status full).
func (s Snapshot) YearTotals(year int) (done, perfect, tracked int) {
	for month := 0; month < 12; month++ {
		days := dateutil.DaysInMonth(year, month)
		for day := 1; day <= days; day++ {
			d := dateutil.MakeDate(year, month, day)
			if dateutil.IsFuture(d, s.Now) {
				continue
			}
			status, ok := s.DayStatus(dateutil.FormatDate(d))
			if !ok {
				continue
			}
			tracked++
			if status != models.StatusNone {
				done++
			}
			if status == models.StatusFull {
				perfect++
			}
		}
	}
	return done, perfect, tracked
}
