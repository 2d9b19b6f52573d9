package stats

import "github.com/julianstephens/lifetrack/internal/dateutil"

// CurrentStreak walks backward day by day starting at yesterday and counts
// consecutive success days. Today is excluded: its check-ins are still in
// progress, so it neither counts nor breaks the run.
func (s Snapshot) CurrentStreak() int {
	streak := 0
	for d := dateutil.Yesterday(s.Now); ; d = dateutil.AddDays(d, -1) {
		if !s.Success(dateutil.FormatDate(d)) {
			break
		}
		streak++
	}
	return streak
}

// CurrentStreakInMonth walks backward from the last day of the zero-based
// month. Days that are today or in the future are skipped without breaking
// the run; the first other non-success day ends it.
func (s Snapshot) CurrentStreakInMonth(year, month int) int {
	streak := 0
	days := dateutil.DaysInMonth(year, month)
	for day := days; day >= 1; day-- {
		d := dateutil.MakeDate(year, month, day)
		if dateutil.IsFuture(d, s.Now) || dateutil.IsToday(d, s.Now) {
			continue
		}
		if !s.Success(dateutil.FormatDate(d)) {
			break
		}
		streak++
	}
	return streak
}

// BestStreakInMonth scans the zero-based month forward, tracking the longest
// run of success days. Today is exempt: it neither extends nor resets the
// run. The scan stops at the first strictly-future day.
func (s Snapshot) BestStreakInMonth(year, month int) int {
	best, cur := 0, 0
	days := dateutil.DaysInMonth(year, month)
	for day := 1; day <= days; day++ {
		d := dateutil.MakeDate(year, month, day)
		if dateutil.IsFuture(d, s.Now) {
			break
		}
		if s.Success(dateutil.FormatDate(d)) {
			cur++
			if cur > best {
				best = cur
			}
		} else if !dateutil.IsToday(d, s.Now) {
			cur = 0
		}
	}
	return best
}
