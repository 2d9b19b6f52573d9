package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, 'today', or 'yesterday')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	d, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	date := dateutil.FormatDate(d)

	habits := t.ActiveHabits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifetrack habit add <name>'.")
		return nil
	}

	fmt.Printf("%s (%s)\n\n", date, d.Format("Monday"))
	for _, h := range habits {
		mark := "○"
		if t.CheckinValue(h.ID, date) == 1 {
			mark = "✓"
		}
		fmt.Printf("  %s %s %s\n", mark, h.Emoji, h.Name)
	}

	snap, err := ctx.Snapshot("")
	if err != nil {
		return err
	}
	status, ok := snap.DayStatus(date)
	fmt.Println()
	if !ok {
		if dateutil.IsFuture(d, time.Now()) {
			fmt.Println("Day status: — (future)")
		} else {
			fmt.Println("Day status: — (no check-ins recorded)")
		}
		return nil
	}
	fmt.Printf("Day status: %s\n", status)
	return nil
}
