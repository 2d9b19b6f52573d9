package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	// Loading the tracker seeds the default habit set into fresh storage.
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	fmt.Printf("Initialized lifetrack storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Printf("Seeded %d default habits. Use 'lifetrack habit list' to see them.\n", len(t.ActiveHabits()))
	return nil
}
