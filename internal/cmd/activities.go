package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
)

// ActivitiesCmd inspects the activity log
type ActivitiesCmd struct {
	Export ActivitiesExportCmd `cmd:"export" help:"Export activities as JSON, YAML or TOML"`
	List   ActivitiesListCmd   `cmd:"list" aliases:"ls" help:"List activities, newest first" default:"1"`
	Stats  ActivitiesStatsCmd  `cmd:"stats" help:"Show time over or under plan"`
}

// ActivityFilterFlags are shared by every activities subcommand
type ActivityFilterFlags struct {
	Kind  string        `help:"Only this kind of activity" enum:"all,work,break" default:"all"`
	Since time.Duration `help:"Only activities started within this duration (e.g. 24h, 0 = all)" default:"0"`
	Today bool          `help:"Only activities started today" short:"t"`
}

func (f ActivityFilterFlags) filter(now time.Time) domain.ActivityFilter {
	var filter domain.ActivityFilter
	if f.Kind != "all" {
		filter.Kind = domain.ActivityKind(f.Kind)
	}
	if f.Since > 0 {
		filter.Since = now.Add(-f.Since)
	}
	if f.Today {
		y, m, d := now.Date()
		midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if midnight.After(filter.Since) {
			filter.Since = midnight
		}
	}
	return filter
}

// ActivitiesListCmd lists activities
type ActivitiesListCmd struct {
	ActivityFilterFlags
	Limit int `help:"Maximum number of activities (0 = all)" short:"n" default:"20"`
}

// Run executes the list command
func (a *ActivitiesListCmd) Run(cli *CLI) error {
	filter := a.filter(time.Now())
	filter.Limit = a.Limit

	records, err := cli.Container.ActivityService.Records(context.Background(), filter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSTARTED\tDURATION\tPLANNED\tDIFF\tTASK")
	for _, rec := range records {
		duration, diff := "running", ""
		if rec.Duration != nil {
			duration = domain.FormatSeconds(*rec.Duration)
			diff = signedSeconds(*rec.Duration - rec.ExpectedDuration)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID,
			rec.Kind,
			rec.Date.Local().Format("2006-01-02 15:04"),
			duration,
			domain.FormatSeconds(rec.ExpectedDuration),
			diff,
			rec.Task)
	}
	w.Flush()

	fmt.Fprintf(stdout, "\nTotal: %d activities\n", len(records))
	return nil
}

// ActivitiesExportCmd exports activities
type ActivitiesExportCmd struct {
	ActivityFilterFlags
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json" short:"f"`
	Output string `help:"Write to this file instead of stdout" short:"o" type:"path"`
}

// Run executes the export command
func (a *ActivitiesExportCmd) Run(cli *CLI) error {
	w := stdout
	if a.Output != "" {
		file, err := os.Create(a.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", a.Output, err)
		}
		defer file.Close()
		w = file
	}

	if err := cli.Container.ActivityService.Export(context.Background(), w, a.Format, a.filter(time.Now())); err != nil {
		return err
	}

	if a.Output != "" {
		logging.Logger.Info("Activities exported", "path", a.Output, "format", a.Format)
		fmt.Fprintf(stdout, "Activities exported to %s\n", a.Output)
	}
	return nil
}

// ActivitiesStatsCmd prints the analytics of the activity log
type ActivitiesStatsCmd struct {
	ActivityFilterFlags
}

// Run executes the stats command
func (a *ActivitiesStatsCmd) Run(cli *CLI) error {
	stats, err := cli.Container.ActivityService.Stats(context.Background(), a.filter(time.Now()))
	if err != nil {
		return err
	}
	return printStats(stats)
}

func printStats(stats domain.Stats) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Work sessions\t%d\n", stats.WorkCount)
	fmt.Fprintf(w, "Work over plan\t%s\n", signedSeconds(stats.WorkDiff))
	fmt.Fprintf(w, "Breaks\t%d\n", stats.BreakCount)
	fmt.Fprintf(w, "Break over plan\t%s\n", signedSeconds(stats.BreakDiff))
	fmt.Fprintf(w, "Open tasks\t%d\n", stats.OpenTasks)
	fmt.Fprintf(w, "Completed tasks\t%d\n", stats.CompletedTasks)
	return w.Flush()
}

// signedSeconds renders a diff with an explicit sign
func signedSeconds(seconds int) string {
	if seconds > 0 {
		return "+" + domain.FormatSeconds(seconds)
	}
	return domain.FormatSeconds(seconds)
}

