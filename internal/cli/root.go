package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/backup"
	"github.com/julianstephens/lifetrack/internal/dateutil"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/stats"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

type Context struct {
	Store storage.Provider

	trk *tracker.Tracker
}

// Tracker loads the habit tracker on first use and caches it for the
// rest of the command.
func (ctx *Context) Tracker() (*tracker.Tracker, error) {
	if ctx.trk != nil {
		return ctx.trk, nil
	}
	t, err := tracker.New(ctx.Store)
	if err != nil {
		return nil, err
	}
	ctx.trk = t
	return t, nil
}

// Snapshot builds a frozen analytics view of the current check-in data.
// habitID filters to a single habit; empty means all active habits.
func (ctx *Context) Snapshot(habitID string) (stats.Snapshot, error) {
	t, err := ctx.Tracker()
	if err != nil {
		return stats.Snapshot{}, err
	}
	return stats.NewSnapshot(t.Checkins(), t.ActiveIDs(), habitID, time.Now()), nil
}

// PerformAutomaticBackup creates a backup on startup, logging failures
// without interrupting the user.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("automatic backup failed", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// resolveDate parses a date argument, accepting "today", "yesterday",
// or YYYY-MM-DD.
func resolveDate(arg string) (time.Time, error) {
	switch arg {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return dateutil.Yesterday(time.Now()), nil
	}
	d, err := dateutil.ParseDate(arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD, 'today', or 'yesterday'", arg)
	}
	return d, nil
}

// resolveMonth parses a YYYY-MM argument, defaulting to the current
// month. The returned month is zero-based.
func resolveMonth(arg string) (year, month int, err error) {
	if arg == "" {
		now := time.Now()
		return now.Year(), int(now.Month()) - 1, nil
	}
	d, err := time.ParseInLocation("2006-01", arg, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, use YYYY-MM", arg)
	}
	return d.Year(), int(d.Month()) - 1, nil
}

var statusStyles = map[int]lipgloss.Style{
	0: lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // none
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("58")),  // low
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("100")), // medium
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("107")), // high
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),  // full
}

var absentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

var todayStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// formatRate renders a 0-100 percentage with no decimals.
func formatRate(r float64) string {
	return fmt.Sprintf("%d%%", int(r+0.5))
}
