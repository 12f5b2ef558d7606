package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
)

// TaskFormResult contains the result of the add task form
type TaskFormResult struct {
	Cancelled bool
	Error     error
	Task      *domain.Task
}

// TaskForm is a Bubble Tea component that adds a task to the backlog
type TaskForm struct {
	Completed   bool
	form        *huh.Form
	name        string
	priority    string
	result      TaskFormResult
	taskService *services.TaskService
	workload    string
}

// NewTaskForm creates the add task form
func NewTaskForm(taskService *services.TaskService) *TaskForm {
	tf := &TaskForm{
		priority:    "0",
		taskService: taskService,
		workload:    "1",
	}

	tf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				CharLimit(domain.MaxTaskNameLength).
				Value(&tf.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Priority").
				Description("Higher comes first").
				Value(&tf.priority).
				Validate(validateInt(-100, 100)),
			huh.NewInput().
				Title("Workload").
				Description("Work sessions planned for the task").
				Value(&tf.workload).
				Validate(validateInt(0, 1000)),
		),
	)

	return tf
}

func (tf *TaskForm) Init() tea.Cmd {
	return tf.form.Init()
}

func (tf *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			tf.result.Cancelled = true
			tf.Completed = true
			return tf, nil
		}
	}

	form, cmd := tf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		tf.form = f
	}

	if tf.form.State == huh.StateCompleted {
		tf.Completed = true
		if err := tf.addTask(); err != nil {
			logging.Logger.Error("Failed to add task", "error", err)
			tf.result.Error = err
		}
		return tf, nil
	}

	return tf, cmd
}

func (tf *TaskForm) View() string {
	return tf.form.View()
}

// Result returns the form result
func (tf *TaskForm) Result() TaskFormResult {
	return tf.result
}

func (tf *TaskForm) addTask() error {
	priority, _ := strconv.Atoi(strings.TrimSpace(tf.priority))
	workload, _ := strconv.Atoi(strings.TrimSpace(tf.workload))

	task, err := tf.taskService.Add(context.Background(), services.AddTaskParams{
		Name:          tf.name,
		Priority:      priority,
		TotalWorkload: workload,
	})
	if err != nil {
		return err
	}
	tf.result.Task = task
	return nil
}

// validateInt accepts integers within [lo, hi]
func validateInt(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}
