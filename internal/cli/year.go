package cli

import (
	"fmt"
	"strconv"
	"time"
)

type YearCmd struct {
	Year  string `arg:"" optional:"" help:"Year to show (defaults to the current year)."`
	Habit string `help:"Show a single habit instead of the combined view."`
}

func (c *YearCmd) Run(ctx *Context) error {
	year := time.Now().Year()
	if c.Year != "" {
		y, err := strconv.Atoi(c.Year)
		if err != nil || y < 1 {
			return fmt.Errorf("invalid year %q", c.Year)
		}
		year = y
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

	fmt.Printf("%d — %s\n\n", year, title)

	for month := 0; month < 12; month++ {
		name := time.Month(month + 1).String()[:3]
		summary := snap.MonthSummary(year, month)
		if r, ok := summary.Rate(); ok {
			fmt.Printf("  %s  %s  (%d/%d)\n", name, formatRate(r), summary.Done, summary.Tracked)
		} else {
			fmt.Printf("  %s  —\n", name)
		}
	}

	done, perfect, tracked := snap.YearTotals(year)
	fmt.Println()
	fmt.Printf("Days with activity: %d\n", done)
	fmt.Printf("Perfect days:       %d\n", perfect)
	fmt.Printf("Days tracked:       %d\n", tracked)
	if summary := snap.YearSummary(year); summary.Tracked > 0 {
		if r, ok := summary.Rate(); ok {
			fmt.Printf("Year rate:          %s\n", formatRate(r))
		}
	}
	return nil
}
