package stats

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Cell is one day in a calendar grid. A nil *Cell is a padding slot.
type Cell struct {
	Day       int // 1-based day of month
	Date      time.Time
	Status    models.DayStatus
	HasStatus bool
	IsToday   bool
}

// MonthGrid lays out the zero-based month Monday-first: leading nils up to
// the first day's weekday index, one cell per day, trailing nils to a
// multiple of 7. Future days (except today) carry no status.
func (s Snapshot) MonthGrid(year, month int) []*Cell {
	days := dateutil.DaysInMonth(year, month)
	firstDow := dateutil.WeekdayIndex(dateutil.MakeDate(year, month, 1))

	cells := make([]*Cell, firstDow, firstDow+days)
	for day := 1; day <= days; day++ {
		d := dateutil.MakeDate(year, month, day)
		cell := &Cell{
			Day:     day,
			Date:    d,
			IsToday: dateutil.IsToday(d, s.Now),
		}
		if !dateutil.IsFuture(d, s.Now) {
			cell.Status, cell.HasStatus = s.DayStatus(dateutil.FormatDate(d))
		}
		cells = append(cells, cell)
	}
	for len(cells)%7 != 0 {
		cells = append(cells, nil)
	}
	return cells
}

// WeekRate is the entry-level completion summary for one row of a month grid.
type WeekRate struct {
	Summary
	WeekStart time.Time
}

// WeeklyRates summarizes each 7-cell row of the month grid.
func (s Snapshot) WeeklyRates(year, month int) []WeekRate {
	cells := s.MonthGrid(year, month)
	var rates []WeekRate
	for row := 0; row*7 < len(cells); row++ {
		week := cells[row*7 : row*7+7]
		var rate WeekRate
		ids := s.habitIDs()
		for _, cell := range week {
			if cell == nil {
				continue
			}
			if rate.WeekStart.IsZero() {
				rate.WeekStart = dateutil.WeekStart(cell.Date)
			}
			if dateutil.IsFuture(cell.Date, s.Now) {
				continue
			}
			day := s.Checkins[dateutil.FormatDate(cell.Date)]
			for _, id := range ids {
				v, ok := day[id]
				if !ok {
					continue
				}
				rate.Tracked++
				if v == 1 {
					rate.Done++
				}
			}
		}
		rates = append(rates, rate)
	}
	return rates
}

// YearGrid is a full-year heatmap layout: 7-row columns (weeks) spanning the
// Monday on or before Jan 1 through the Sunday on or after Dec 31. Cells
// outside the target year are nil.
type YearGrid struct {
	Weeks [][]*Cell // each week has exactly 7 cells, Monday first
}

// YearGrid builds the year heatmap layout for the given year.
func (s Snapshot) YearGrid(year int) YearGrid {
	jan1 := dateutil.MakeDate(year, 0, 1)
	dec31 := dateutil.MakeDate(year, 11, 31)

	start := dateutil.WeekStart(jan1)
	end := dateutil.AddDays(dateutil.WeekStart(dec31), 6)

	var grid YearGrid
	for ws := start; !ws.After(end); ws = dateutil.AddDays(ws, 7) {
		week := make([]*Cell, 7)
		for i := 0; i < 7; i++ {
			d := dateutil.AddDays(ws, i)
			if d.Year() != year {
				continue
			}
			cell := &Cell{
				Day:     d.Day(),
				Date:    d,
				IsToday: dateutil.IsToday(d, s.Now),
			}
			if !dateutil.IsFuture(d, s.Now) {
				cell.Status, cell.HasStatus = s.DayStatus(dateutil.FormatDate(d))
			}
			week[i] = cell
		}
		grid.Weeks = append(grid.Weeks, week)
	}
	return grid
}
