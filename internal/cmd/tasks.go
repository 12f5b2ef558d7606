package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
)

// TasksCmd manages the backlog
type TasksCmd struct {
	Add  TasksAddCmd  `cmd:"add" help:"Add a task to the backlog"`
	Del  TasksDelCmd  `cmd:"del" aliases:"rm" help:"Delete a task"`
	Done TasksDoneCmd `cmd:"done" help:"Mark a task as completed"`
	Edit TasksEditCmd `cmd:"edit" help:"Edit a task"`
	List TasksListCmd `cmd:"list" aliases:"ls" help:"List tasks" default:"1"`
}

// TasksAddCmd adds a task
type TasksAddCmd struct {
	Name     string `arg:"" help:"Task name"`
	Priority int    `help:"Priority, higher is listed first" short:"p" default:"0"`
	Workload int    `help:"Planned number of work sessions" short:"w" default:"1"`
}

// Run executes the add command
func (t *TasksAddCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing tasks add command", "name", t.Name, "priority", t.Priority)

	task, err := cli.Container.TaskService.Add(context.Background(), services.AddTaskParams{
		Name:          t.Name,
		Priority:      t.Priority,
		TotalWorkload: t.Workload,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Task %d added: %s\n", task.ID, task.Label())
	return nil
}

// TasksListCmd lists tasks
type TasksListCmd struct {
	All    bool   `help:"Include completed tasks" short:"a"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (t *TasksListCmd) Run(cli *CLI) error {
	tasks, err := cli.Container.TaskService.List(context.Background(), t.All)
	if err != nil {
		return err
	}

	if t.Format == "json" {
		return printTasksJSON(tasks)
	}
	return printTasksTable(tasks)
}

type taskJSON struct {
	Completed         bool   `json:"completed"`
	CompletedWorkload int    `json:"completed_workload"`
	CreatedAt         string `json:"created_at"`
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Priority          int    `json:"priority"`
	TotalWorkload     int    `json:"total_workload"`
}

func printTasksJSON(tasks []domain.Task) error {
	out := make([]taskJSON, len(tasks))
	for i, task := range tasks {
		out[i] = taskJSON{
			Completed:         task.Completed,
			CompletedWorkload: task.CompletedWorkload,
			CreatedAt:         task.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			ID:                task.ID,
			Name:              task.Name,
			Priority:          task.Priority,
			TotalWorkload:     task.TotalWorkload,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

func printTasksTable(tasks []domain.Task) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tWORKLOAD\tDONE\tCREATED")
	for _, task := range tasks {
		done := ""
		if task.Completed {
			done = "✓"
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%d/%d\t%s\t%s\n",
			task.ID,
			task.Name,
			task.Priority,
			task.CompletedWorkload,
			task.TotalWorkload,
			done,
			task.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	w.Flush()

	fmt.Fprintf(stdout, "\nTotal: %d tasks\n", len(tasks))
	return nil
}

// TasksEditCmd edits a task; unset flags keep their value
type TasksEditCmd struct {
	ID        uint    `arg:"" help:"Task id"`
	Completed *int    `help:"Completed work sessions"`
	Name      *string `help:"New name" short:"n"`
	Priority  *int    `help:"New priority" short:"p"`
	Workload  *int    `help:"Planned number of work sessions" short:"w"`
}

// Run executes the edit command
func (t *TasksEditCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing tasks edit command", "id", t.ID)

	task, err := cli.Container.TaskService.Edit(context.Background(), t.ID, services.EditTaskParams{
		CompletedWorkload: t.Completed,
		Name:              t.Name,
		Priority:          t.Priority,
		TotalWorkload:     t.Workload,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Task %d updated: %s\n", task.ID, task.Label())
	return nil
}

// TasksDoneCmd completes a task
type TasksDoneCmd struct {
	ID uint `arg:"" help:"Task id"`
}

// Run executes the done command
func (t *TasksDoneCmd) Run(cli *CLI) error {
	task, err := cli.Container.TaskService.Complete(context.Background(), t.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Task %d completed: %s\n", task.ID, task.Label())
	return nil
}

// TasksDelCmd deletes a task
type TasksDelCmd struct {
	Force bool `help:"Force deletion without confirmation" short:"f"`
	ID    uint `arg:"" help:"Task id"`
}

// Run executes the del command
func (t *TasksDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing tasks del command", "id", t.ID, "force", t.Force)

	task, err := cli.Container.TaskService.Get(ctx, t.ID)
	if err != nil {
		return err
	}

	if !t.Force && !t.confirmDeletion(task) {
		return nil
	}

	if err := cli.Container.TaskService.Delete(ctx, t.ID); err != nil {
		logging.Logger.Error("Failed to delete task", "id", t.ID, "error", err)
		return err
	}

	fmt.Fprintf(stdout, "Task %d deleted\n", t.ID)
	return nil
}

func (t *TasksDelCmd) confirmDeletion(task *domain.Task) bool {
	fmt.Fprintf(stdout, "WARNING: This will delete task %d '%s'\n", task.ID, task.Name)
	fmt.Fprintln(stdout, "  - Its activities are kept without a task")
	fmt.Fprint(stdout, "\nContinue? (y/N): ")

	response, _ := bufio.NewReader(stdin).ReadString('\n')
	response = strings.TrimSpace(response)
	if response != "y" && response != "Y" {
		logging.Logger.Info("User cancelled task deletion", "id", task.ID)
		fmt.Fprintln(stdout, "Cancelled")
		return false
	}
	return true
}
