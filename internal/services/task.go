package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// TaskService manages the backlog
type TaskService struct {
	repo ports.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// AddTaskParams contains parameters for creating a task
type AddTaskParams struct {
	Name          string
	Priority      int
	TotalWorkload int
}

// Add creates a task
func (s *TaskService) Add(ctx context.Context, params AddTaskParams) (*domain.Task, error) {
	task := &domain.Task{
		Name:          strings.TrimSpace(params.Name),
		Priority:      params.Priority,
		TotalWorkload: params.TotalWorkload,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Adding task", "name", task.Name, "priority", task.Priority, "total_workload", task.TotalWorkload)
	if err := s.repo.AddTask(ctx, task); err != nil {
		logging.Logger.Error("Failed to add task", "error", err)
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	logging.Logger.Info("Task added", "id", task.ID)
	return task, nil
}

// Get returns one task
func (s *TaskService) Get(ctx context.Context, id uint) (*domain.Task, error) {
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// List returns tasks ordered by priority (highest first), then by id
func (s *TaskService) List(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, includeCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority > tasks[j].Priority
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// EditTaskParams contains the editable task fields; nil fields are left unchanged
type EditTaskParams struct {
	Name              *string
	Priority          *int
	CompletedWorkload *int
	TotalWorkload     *int
}

// Edit updates the given fields of a task
func (s *TaskService) Edit(ctx context.Context, id uint, params EditTaskParams) (*domain.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		task.Name = strings.TrimSpace(*params.Name)
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}
	if params.CompletedWorkload != nil {
		task.CompletedWorkload = *params.CompletedWorkload
	}
	if params.TotalWorkload != nil {
		task.TotalWorkload = *params.TotalWorkload
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}

	logging.Logger.Info("Editing task", "id", id)
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return task, nil
}

// Complete marks a task as completed
func (s *TaskService) Complete(ctx context.Context, id uint) (*domain.Task, error) {
	task, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Completed {
		return nil, fmt.Errorf("task %d: %w", id, domain.ErrTaskCompleted)
	}

	task.Completed = true
	logging.Logger.Info("Completing task", "id", id, "name", task.Name)
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to complete task %d: %w", id, err)
	}
	return task, nil
}

// Delete removes a task
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	logging.Logger.Info("Deleting task", "id", id)
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}
