package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/jeevansaathi/saathi-cli/internal/cli"
	"github.com/jeevansaathi/saathi-cli/internal/constants"
	"github.com/jeevansaathi/saathi-cli/internal/errors"
	"github.com/jeevansaathi/saathi-cli/internal/logger"
	"github.com/jeevansaathi/saathi-cli/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string; use environment variables or .pgpass instead." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      cli.InitCmd      `cmd:"" help:"Initialize saathi storage."`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and habit tracking."`
	Task      cli.TaskCmd      `cmd:"" help:"Manage tasks."`
	List      cli.ListCmd      `cmd:"" help:"Manage task lists."`
	Journal   cli.JournalCmd   `cmd:"" help:"Manage journal entries."`
	Focus     cli.FocusCmd     `cmd:"" help:"Manage focus areas."`
	Goal      cli.GoalCmd      `cmd:"" help:"Manage goals."`
	Milestone cli.MilestoneCmd `cmd:"" help:"Manage goal milestones."`
	Agenda    cli.AgendaCmd    `cmd:"" help:"Show the aggregated agenda." default:"1"`
	Progress  cli.ProgressCmd  `cmd:"" help:"Show completion progress for a date range."`
	Settings  cli.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal productivity companion: habits, tasks, journal, and a unified agenda"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://") {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use a connection string without a password and supply credentials via")
			fmt.Fprintln(os.Stderr, "       environment variables (PGPASSWORD) or a .pgpass file.")
			os.Exit(1)
		}
	}
	store := storage.NewStore(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(storage.ExpandPath(constants.DefaultConfigPath)),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Load the store before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err := ctx.Run(&cli.Context{Store: store})
	store.Close()
	if err != nil {
		errors.Fatal(err)
	}
}
