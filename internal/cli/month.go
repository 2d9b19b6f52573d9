package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/stats"
)

type MonthCmd struct {
	Month string `arg:"" optional:"" help:"Month to show (YYYY-MM, defaults to the current month)."`
	Habit string `help:"Show a single habit instead of the combined view."`
}

func (c *MonthCmd) Run(ctx *Context) error {
	year, month, err := resolveMonth(c.Month)
	if err != nil {
		return err
	}

	habitID := ""
	title := "All habits"
	if c.Habit != "" {
		t, err := ctx.Tracker()
		if err != nil {
			return err
		}
		h, err := t.FindHabitByName(c.Habit)
		if err != nil {
			return err
		}
		habitID = h.ID
		title = h.Emoji + " " + h.Name
	}

	snap, err := ctx.Snapshot(habitID)
	if err != nil {
		return err
	}

	first := dateutil.MakeDate(year, month, 1)
	fmt.Printf("%s — %s\n\n", first.Format("January 2006"), title)
	fmt.Println(renderMonthGrid(snap, year, month))

	rates := snap.WeeklyRates(year, month)
	var parts []string
	for _, wr := range rates {
		if r, ok := wr.Rate(); ok {
			parts = append(parts, formatRate(r))
		} else {
			parts = append(parts, "—")
		}
	}
	fmt.Printf("Weekly rates:   %s\n", strings.Join(parts, "  "))

	summary := snap.MonthSummary(year, month)
	if r, ok := summary.Rate(); ok {
		fmt.Printf("Month rate:     %s (%d of %d check-ins)\n", formatRate(r), summary.Done, summary.Tracked)
	} else {
		fmt.Println("Month rate:     — (no data yet)")
	}
	fmt.Printf("Current streak: %d days\n", snap.CurrentStreakInMonth(year, month))
	fmt.Printf("Best streak:    %d days\n", snap.BestStreakInMonth(year, month))
	return nil
}

// renderMonthGrid draws a Mon-first calendar with one colored cell per
// day, shaded by completion level.
func renderMonthGrid(snap stats.Snapshot, year, month int) string {
	var b strings.Builder
	b.WriteString("  Mo  Tu  We  Th  Fr  Sa  Su\n")

	cells := snap.MonthGrid(year, month)
	for i, cell := range cells {
		b.WriteString(renderCell(cell))
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderCell(cell *stats.Cell) string {
	if cell == nil {
		return "    "
	}
	label := fmt.Sprintf("%4d", cell.Day)
	if cell.IsToday {
		return todayStyle.Render(label)
	}
	if !cell.HasStatus {
		return absentStyle.Render(label)
	}
	return statusStyles[int(cell.Status)].Render(label)
}
