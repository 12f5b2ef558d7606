package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/services"
	"github.com/breakwise/breakwise/internal/theme"
)

// Backlog lists the tasks work sessions can be bound to
type Backlog struct {
	activeID      uint
	showCompleted bool
	table         table.Model
	taskService   *services.TaskService
	tasks         []domain.Task
}

// NewBacklog creates an empty backlog table; call Reload to fill it
func NewBacklog(taskService *services.TaskService, keys KeyMap) *Backlog {
	t := table.New(
		table.WithColumns(backlogColumns(60)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles())
	t.KeyMap.LineUp = keys.Navigation.Up
	t.KeyMap.LineDown = keys.Navigation.Down

	return &Backlog{table: t, taskService: taskService}
}

func backlogColumns(width int) []table.Column {
	nameWidth := max(width-2-6-10-6, 10)
	return []table.Column{
		{Title: " ", Width: 2},
		{Title: "Task", Width: nameWidth},
		{Title: "Prio", Width: 6},
		{Title: "Progress", Width: 10},
	}
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = theme.TableHeaderStyle
	s.Selected = theme.TableSelectedStyle
	return s
}

// Reload fetches the tasks and keeps the cursor in range
func (b *Backlog) Reload(ctx context.Context) error {
	tasks, err := b.taskService.List(ctx, b.showCompleted)
	if err != nil {
		return err
	}
	b.tasks = tasks
	b.refreshRows()
	return nil
}

// SetActive marks the task the running work session is bound to (0 for none)
func (b *Backlog) SetActive(id uint) {
	if b.activeID == id {
		return
	}
	b.activeID = id
	b.refreshRows()
}

func (b *Backlog) refreshRows() {
	rows := make([]table.Row, len(b.tasks))
	for i, t := range b.tasks {
		marker := " "
		switch {
		case t.ID == b.activeID:
			marker = domain.SymbolWork
		case t.Completed:
			marker = "✓"
		}
		rows[i] = table.Row{
			marker,
			t.Name,
			strconv.Itoa(t.Priority),
			fmt.Sprintf("%d/%d", t.CompletedWorkload, t.TotalWorkload),
		}
	}
	b.table.SetRows(rows)

	if cursor := b.table.Cursor(); cursor >= len(rows) {
		b.table.SetCursor(max(len(rows)-1, 0))
	}
}

// ToggleCompleted shows or hides completed tasks
func (b *Backlog) ToggleCompleted(ctx context.Context) error {
	b.showCompleted = !b.showCompleted
	return b.Reload(ctx)
}

// ShowingCompleted reports whether completed tasks are listed
func (b *Backlog) ShowingCompleted() bool {
	return b.showCompleted
}

// Selected returns the task under the cursor
func (b *Backlog) Selected() (domain.Task, bool) {
	cursor := b.table.Cursor()
	if cursor < 0 || cursor >= len(b.tasks) {
		return domain.Task{}, false
	}
	return b.tasks[cursor], true
}

// Len returns the number of listed tasks
func (b *Backlog) Len() int {
	return len(b.tasks)
}

// SetSize adapts the table to the space left by the header and footer
func (b *Backlog) SetSize(width, height int) {
	b.table.SetColumns(backlogColumns(width))
	b.table.SetWidth(width)
	b.table.SetHeight(max(height, 3))
}

func (b *Backlog) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	b.table, cmd = b.table.Update(msg)
	return cmd
}

func (b *Backlog) View() string {
	if len(b.tasks) == 0 {
		return theme.MutedStyle.Render("No tasks. Press a to add one.")
	}
	return b.table.View()
}
