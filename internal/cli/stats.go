package cli

import (
	"fmt"
	"time"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())-1

	snap, err := ctx.Snapshot("")
	if err != nil {
		return err
	}

	fmt.Printf("Current streak: %d days\n", snap.CurrentStreak())
	fmt.Printf("This month:     current %d, best %d\n",
		snap.CurrentStreakInMonth(year, month), snap.BestStreakInMonth(year, month))
	if r, ok := snap.MonthSummary(year, month).Rate(); ok {
		fmt.Printf("Month rate:     %s\n", formatRate(r))
	} else {
		fmt.Println("Month rate:     — (no data yet)")
	}

	habits := t.ActiveHabits()
	if len(habits) == 0 {
		return nil
	}

	fmt.Println("\nPer habit (this month):")
	for _, h := range habits {
		hs, err := ctx.Snapshot(h.ID)
		if err != nil {
			return err
		}
		summary := hs.MonthSummary(year, month)
		rate := "—"
		if r, ok := summary.Rate(); ok {
			rate = formatRate(r)
		}
		fmt.Printf("  %s %-20s %s  streak %d\n", h.Emoji, h.Name, rate, hs.CurrentStreak())
	}
	return nil
}
