package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/services"
	"github.com/breakwise/breakwise/internal/theme"
)

// logLimit caps the rows shown in the log view
const logLimit = 200

// LogView lists recorded activities and today's statistics
type LogView struct {
	activityService *services.ActivityService
	empty           bool
	now             func() time.Time
	stats           domain.Stats
	table           table.Model
}

// NewLogView creates an empty log table; call Reload to fill it
func NewLogView(activityService *services.ActivityService, keys KeyMap) *LogView {
	t := table.New(
		table.WithColumns(logColumns(60)),
		table.WithHeight(10),
		table.WithFocused(true),
	)
	t.SetStyles(tableStyles())
	t.KeyMap.LineUp = keys.Navigation.Up
	t.KeyMap.LineDown = keys.Navigation.Down

	return &LogView{activityService: activityService, empty: true, now: time.Now, table: t}
}

func logColumns(width int) []table.Column {
	taskWidth := max(width-13-6-7-7-7, 10)
	return []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Kind", Width: 6},
		{Title: "Task", Width: taskWidth},
		{Title: "Plan", Width: 7},
		{Title: "Real", Width: 7},
		{Title: "Diff", Width: 7},
	}
}

// Reload fetches recent activities and the statistics since midnight
func (l *LogView) Reload(ctx context.Context) error {
	records, err := l.activityService.Records(ctx, domain.ActivityFilter{Limit: logLimit})
	if err != nil {
		return err
	}

	rows := make([]table.Row, len(records))
	for i, r := range records {
		actual, diff := "running", ""
		if r.Duration != nil {
			actual = domain.FormatSeconds(*r.Duration)
			diff = formatDiff(*r.Duration - r.ExpectedDuration)
		}
		rows[i] = table.Row{
			r.Date.Local().Format("Jan 02 15:04"),
			r.Kind,
			r.Task,
			domain.FormatSeconds(r.ExpectedDuration),
			actual,
			diff,
		}
	}
	l.table.SetRows(rows)
	l.empty = len(rows) == 0

	now := l.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	stats, err := l.activityService.Stats(ctx, domain.ActivityFilter{Since: midnight})
	if err != nil {
		return err
	}
	l.stats = stats
	return nil
}

// formatDiff renders a signed MM:SS difference
func formatDiff(seconds int) string {
	if seconds > 0 {
		return "+" + domain.FormatSeconds(seconds)
	}
	return domain.FormatSeconds(seconds)
}

// Summary renders today's statistics on one line
func (l *LogView) Summary() string {
	s := l.stats
	work := fmt.Sprintf("%d work (%s)", s.WorkCount, formatDiff(s.WorkDiff))
	if s.WorkDiff > 0 {
		work = theme.OverTimeStyle.Render(work)
	}
	return fmt.Sprintf("Today: %s • %d breaks (%s) • %d open / %d completed tasks",
		work, s.BreakCount, formatDiff(s.BreakDiff), s.OpenTasks, s.CompletedTasks)
}

// SetSize adapts the table to the space left by the header and footer
func (l *LogView) SetSize(width, height int) {
	l.table.SetColumns(logColumns(width))
	l.table.SetWidth(width)
	l.table.SetHeight(max(height-2, 3))
}

func (l *LogView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	return cmd
}

func (l *LogView) View() string {
	body := l.table.View()
	if l.empty {
		body = theme.MutedStyle.Render("No activity recorded yet.")
	}
	return l.Summary() + "\n\n" + body
}
