package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pelletier/go-toml/v2"

	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Get  SettingsGetCmd  `cmd:"get" help:"Show the session settings" default:"1"`
	Set  SettingsSetCmd  `cmd:"set" help:"Change the session settings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show config.toml location and available options"`
}

// SettingsGetCmd prints the session settings stored in the database
type SettingsGetCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the get command
func (s *SettingsGetCmd) Run(cli *CLI) error {
	settings, err := cli.Container.NewSettingsService().Load(context.Background())
	if err != nil {
		return err
	}
	return printSettings(stdout, settings, s.Format)
}

// SettingsSetCmd updates the session settings; unset flags keep their value
type SettingsSetCmd struct {
	BreakTime        *int   `help:"Break duration in minutes"`
	PlaySound        string `help:"Play a sound when a countdown expires (true or false)"`
	ShowNotification string `help:"Show a desktop notification when a countdown expires (true or false)"`
	WorkTime         *int   `help:"Work duration in minutes"`
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.NewSettingsService()

	settings, err := service.Load(ctx)
	if err != nil {
		return err
	}
	if err := s.apply(&settings); err != nil {
		return err
	}

	logging.Logger.Info("Executing settings set command",
		"work_time", settings.WorkTime,
		"break_time", settings.BreakTime,
		"play_sound", settings.PlaySound,
		"show_notification", settings.ShowNotification)

	if err := service.Update(ctx, settings); err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Settings saved. A running tracker picks them up on its next start.")
	return printSettings(stdout, settings, "table")
}

func (s *SettingsSetCmd) apply(settings *domain.Settings) error {
	if s.BreakTime != nil {
		settings.BreakTime = *s.BreakTime
	}
	if s.WorkTime != nil {
		settings.WorkTime = *s.WorkTime
	}
	if s.PlaySound != "" {
		v, err := strconv.ParseBool(s.PlaySound)
		if err != nil {
			return fmt.Errorf("invalid --play-sound %q: %w", s.PlaySound, err)
		}
		settings.PlaySound = v
	}
	if s.ShowNotification != "" {
		v, err := strconv.ParseBool(s.ShowNotification)
		if err != nil {
			return fmt.Errorf("invalid --show-notification %q: %w", s.ShowNotification, err)
		}
		settings.ShowNotification = v
	}
	return nil
}

func printSettings(w io.Writer, settings domain.Settings, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(map[string]any{
			"break_time":        settings.BreakTime,
			"play_sound":        settings.PlaySound,
			"show_notification": settings.ShowNotification,
			"work_time":         settings.WorkTime,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "work_time\t%d min\n", settings.WorkTime)
	fmt.Fprintf(tw, "break_time\t%d min\n", settings.BreakTime)
	fmt.Fprintf(tw, "play_sound\t%t\n", settings.PlaySound)
	fmt.Fprintf(tw, "show_notification\t%t\n", settings.ShowNotification)
	return tw.Flush()
}

// SettingsMetaCmd displays config.toml metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table, json or toml" enum:"table,json,toml" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()

	switch s.Format {
	case "json":
		data, err := json.MarshalIndent(map[string]any{
			"settings_file": settingsFile,
			"format":        config.GetSettingsExample(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil

	case "toml":
		data, err := toml.Marshal(config.GetSettingsExample())
		if err != nil {
			return fmt.Errorf("failed to marshal TOML: %w", err)
		}
		fmt.Fprint(stdout, string(data))
		return nil
	}

	fmt.Fprintf(stdout, "Settings file: %s\n\n", settingsFile)

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTYPE\tEXAMPLE")
	for _, m := range config.GetSettingsMeta() {
		fmt.Fprintf(w, "%s\t%s\t%v\n", m.Key, m.Type, m.Example)
	}
	w.Flush()

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Create or edit this file to configure breakwise.")
	fmt.Fprintln(stdout, "All settings are optional and have sensible defaults.")
	fmt.Fprintln(stdout, "Session durations are stored in the database: see `breakwise settings set`.")

	return nil
}
