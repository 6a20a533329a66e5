package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"moodmatrix/internal/cli"
	"moodmatrix/internal/constants"
	"moodmatrix/internal/errors"
	"moodmatrix/internal/logger"
	"moodmatrix/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"path" default:"~/.config/moodmatrix/moodmatrix.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize moodmatrix storage."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Timeline cli.TimelineCmd `cmd:"" help:"Show mood entries grouped by recency."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show a month calendar of moods."`
	Insights cli.InsightsCmd `cmd:"" help:"Show mood trends and activity correlations."`
	Export   cli.ExportCmd   `cmd:"" help:"Export settings as JSON."`
	Import   cli.ImportCmd   `cmd:"" help:"Import settings from JSON."`
	Clear    cli.ClearCmd    `cmd:"" help:"Delete all mood entries and activity logs."`
	Mood     struct {
		Log    cli.MoodLogCmd    `cmd:"" help:"Log a mood for a day."`
		Today  cli.MoodTodayCmd  `cmd:"" help:"Show today's mood." default:"1"`
		List   cli.MoodListCmd   `cmd:"" help:"List mood entries by month."`
		Delete cli.MoodDeleteCmd `cmd:"" help:"Delete a mood entry."`
	} `cmd:"" help:"Manage mood entries."`
	Activity struct {
		Add    cli.ActivityAddCmd    `cmd:"" help:"Add an activity log."`
		Quick  cli.ActivityQuickCmd  `cmd:"" help:"Log an activity as completed for today."`
		Toggle cli.ActivityToggleCmd `cmd:"" help:"Toggle an activity's completed flag."`
		List   cli.ActivityListCmd   `cmd:"" help:"List activity logs." default:"1"`
		Stats  cli.ActivityStatsCmd  `cmd:"" help:"Show per-activity completion stats."`
		Delete cli.ActivityDeleteCmd `cmd:"" help:"Delete an activity log."`
	} `cmd:"" help:"Manage activity logs."`
	Settings struct {
		Show    cli.SettingsShowCmd    `cmd:"" help:"Show current settings." default:"1"`
		Set     cli.SettingsSetCmd     `cmd:"" help:"Change settings values."`
		Themes  cli.SettingsThemesCmd  `cmd:"" help:"List available color themes."`
		Theme   cli.SettingsThemeCmd   `cmd:"" help:"Activate a color theme."`
		Premium cli.SettingsPremiumCmd `cmd:"" help:"Toggle premium on or off."`
	} `cmd:"" help:"Manage application settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Offline mood and habit tracking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: storage.NewSQLiteStore(CLI.Config),
	}

	// Load the store up front except for init, which creates it.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := appCtx.Store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
