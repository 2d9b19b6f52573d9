package cli

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/dateutil"
)

type MarkCmd struct {
	Habit  string `arg:"" help:"Name of the habit to mark."`
	Date   string `help:"Date to mark (YYYY-MM-DD)." default:"today"`
	Done   bool   `help:"Set the habit done instead of toggling." xor:"val"`
	Missed bool   `help:"Set the habit not done instead of toggling." xor:"val"`
}

func (c *MarkCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	h, err := t.FindHabitByName(c.Habit)
	if err != nil {
		return err
	}
	d, err := resolveDate(c.Date)
	if err != nil {
		return err
	}
	date := dateutil.FormatDate(d)

	switch {
	case c.Done:
		err = t.SetCheckin(h.ID, date, true)
	case c.Missed:
		err = t.SetCheckin(h.ID, date, false)
	default:
		err = t.ToggleCheckin(h.ID, date)
	}
	if err != nil {
		return err
	}

	if t.CheckinValue(h.ID, date) == 1 {
		fmt.Printf("✓ %s %s done on %s\n", h.Emoji, h.Name, date)
	} else {
		fmt.Printf("○ %s %s not done on %s\n", h.Emoji, h.Name, date)
	}
	return nil
}
