package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/lifetrack/internal/constants"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name (max 20 characters)."`
	Emoji string `help:"Emoji shown next to the habit." default:"✅"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	h, err := t.AddHabit(c.Name, c.Emoji)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Added habit %s %s\n", h.Emoji, h.Name)
	return nil
}

type HabitRenameCmd struct {
	Habit string `arg:"" help:"Current name of the habit."`
	Name  string `arg:"" help:"New name."`
	Emoji string `help:"New emoji (unchanged if omitted)."`
}

func (c *HabitRenameCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	h, err := t.FindHabitByName(c.Habit)
	if err != nil {
		return err
	}
	emoji := c.Emoji
	if emoji == "" {
		emoji = h.Emoji
	}
	if err := t.UpdateHabit(h.ID, c.Name, emoji); err != nil {
		return err
	}
	fmt.Printf("✓ Renamed %q to %s %s\n", c.Habit, emoji, strings.TrimSpace(c.Name))
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Name of the habit to delete."`
	Force bool   `help:"Skip the confirmation prompt." short:"f"`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	h, err := t.FindHabitByName(c.Habit)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete habit %s %s? Its check-in history will be kept. [y/N]: ", h.Emoji, h.Name)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	// Safety copy before the destructive write
	ctx.PerformAutomaticBackup()

	if err := t.DeleteHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted habit %s %s\n", h.Emoji, h.Name)
	return nil
}

type HabitListCmd struct {
	All bool `help:"Include deleted habits." short:"a"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	habits := t.ActiveHabits()
	if c.All {
		habits = t.AllHabits()
	}
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'lifetrack habit add <name>'.")
		return nil
	}

	active := 0
	for _, h := range habits {
		if h.IsDeleted() {
			fmt.Printf("  %s %s (deleted %s)\n", h.Emoji, h.Name, h.DeletedAt.Format("2006-01-02"))
			continue
		}
		active++
		fmt.Printf("  %d. %s %s\n", h.SortOrder+1, h.Emoji, h.Name)
	}
	fmt.Printf("\n%d of %d habit slots used.\n", active, constants.MaxActiveHabits)
	return nil
}

type HabitReorderCmd struct {
	Habits []string `arg:"" help:"All active habit names in the desired order."`
}

func (c *HabitReorderCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(c.Habits))
	for _, name := range c.Habits {
		h, err := t.FindHabitByName(name)
		if err != nil {
			return err
		}
		ids = append(ids, h.ID)
	}
	if err := t.Reorder(ids); err != nil {
		return err
	}
	fmt.Println("✓ Habits reordered")
	return nil
}
