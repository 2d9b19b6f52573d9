// Package dateutil holds the calendar helpers shared by the check-in store and
// the analytics engine. All helpers are deterministic: anything that depends on
// "now" takes the reference instant as an argument.
//
// Months are zero-based (January = 0) throughout, matching the engine-wide
// convention used by the grids and streak walks.
package dateutil

import "time"

// DateFormat is the fixed ISO day format used for all check-in keys.
const DateFormat = "2006-01-02"

// FormatDate renders t as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD string in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.Local)
}

// MakeDate builds a local midnight time for the given year, zero-based month
// and 1-based day.
func MakeDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t falls on the same calendar day as now.
func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsFuture reports whether t is on a strictly later calendar day than now.
// Today itself is never future.
func IsFuture(t, now time.Time) bool {
	return StartOfDay(t).After(StartOfDay(now))
}

// Yesterday returns the day before now.
func Yesterday(now time.Time) time.Time {
	return AddDays(now, -1)
}

// AddDays shifts t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// WeekdayIndex maps t's weekday to 0=Monday..6=Sunday.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekStart returns the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	return AddDays(t, -WeekdayIndex(t))
}

// DaysInMonth returns the number of days in the given zero-based month.
func DaysInMonth(year, month int) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DayOfYear returns t's 1-based ordinal day within its year.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}
