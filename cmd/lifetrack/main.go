package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/config"
	"github.com/julianstephens/lifetrack/internal/constants"
	apperrors "github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/keyring"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Storage string `help:"Storage path or PostgreSQL connection string." type:"path"`
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init  cli.InitCmd  `cmd:"" help:"Initialize lifetrack storage."`
	Tui   cli.TuiCmd   `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Mark  cli.MarkCmd  `cmd:"" help:"Toggle a habit check-in."`
	Day   cli.DayCmd   `cmd:"" help:"Show check-ins for a day."`
	Month cli.MonthCmd `cmd:"" help:"Show the month calendar and rates."`
	Year  cli.YearCmd  `cmd:"" help:"Show the year overview."`
	Stats cli.StatsCmd `cmd:"" help:"Show streaks and completion rates."`
	Habit struct {
		Add     cli.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		Rename  cli.HabitRenameCmd  `cmd:"" help:"Rename a habit."`
		Delete  cli.HabitDeleteCmd  `cmd:"" help:"Delete a habit (history is kept)."`
		List    cli.HabitListCmd    `cmd:"" help:"List habits."`
		Reorder cli.HabitReorderCmd `cmd:"" help:"Reorder habits."`
	} `cmd:"" help:"Manage habits."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`
	ConfigCmd struct {
		SetConnection   cli.ConfigSetConnectionCmd   `cmd:"" name:"set-connection" help:"Store a database connection string in the OS keyring."`
		ShowConnection  cli.ConfigShowConnectionCmd  `cmd:"" name:"show-connection" help:"Show the stored connection string (password masked)."`
		ClearConnection cli.ConfigClearConnectionCmd `cmd:"" name:"clear-connection" help:"Remove the stored connection string."`
	} `cmd:"" name:"config" help:"Manage configuration."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifetrack"),
		kong.Description("Daily habit check-in tracker with streaks and calendar analytics"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	fileCfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	debug := CLI.Debug
	if !debug && fileCfg.Debug != nil {
		debug = *fileCfg.Debug
	}
	if err := logger.Init(logger.Config{Debug: debug, ConfigDir: config.ConfigDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	store, err := selectStore(fileCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	apperrors.Fatal(ctx.Run(appCtx))
}

func configPath() string {
	if CLI.Config != "" {
		return CLI.Config
	}
	return config.DefaultConfigPath()
}

// selectStore picks a storage provider from the --storage flag, the
// config file, or the default SQLite path, in that order. PostgreSQL
// targets may keep their credentials in the OS keyring or in the
// environment instead of the connection string.
func selectStore(fileCfg config.FileConfig) (storage.Provider, error) {
	target := CLI.Storage
	if target == "" && fileCfg.Storage != nil {
		target = *fileCfg.Storage
	}
	if target == "" {
		target = config.DefaultStoragePath()
	}

	switch {
	case strings.HasPrefix(target, "postgres://"), strings.HasPrefix(target, "postgresql://"), strings.Contains(target, "host="):
		connStr, err := resolveConnectionString(target)
		if err != nil {
			return nil, err
		}
		return storage.NewPostgresStore(connStr), nil
	case strings.HasSuffix(target, ".json"):
		return storage.NewJSONStore(target), nil
	default:
		return storage.NewSQLiteStore(target), nil
	}
}

func resolveConnectionString(target string) (string, error) {
	if storage.HasEmbeddedCredentials(target) {
		return target, nil
	}

	// Prefer the keyring, fall back to the environment
	stored, err := keyring.GetConnectionString()
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		logger.Warn("keyring lookup failed", "error", err)
	}

	if env := os.Getenv(constants.ConnectionEnvVar); env != "" {
		return env, nil
	}

	// No stored credentials; the target itself may still work (e.g.
	// trust auth or .pgpass)
	return target, nil
}
