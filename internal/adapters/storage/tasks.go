package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/breakwise/breakwise/internal/domain"
)

// GetTask implements TaskReader.GetTask
func (r *SQLiteRepository) GetTask(ctx context.Context, id uint) (*domain.Task, error) {
	var model TaskModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).First(&model, id).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
		}
		return nil, err
	}

	task := taskModelToDomain(model)
	return &task, nil
}

// ListTasks implements TaskReader.ListTasks
func (r *SQLiteRepository) ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	var models []TaskModel
	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("priority DESC").Order("id ASC")
		if !includeCompleted {
			query = query.Where("completed = ?", false)
		}
		return query.Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, len(models))
	for i, m := range models {
		tasks[i] = taskModelToDomain(m)
	}
	return tasks, nil
}

// AddTask implements TaskWriter.AddTask and assigns the new id to task
func (r *SQLiteRepository) AddTask(ctx context.Context, task *domain.Task) error {
	model := domainToTaskModel(*task)
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	task.ID = model.ID
	task.CreatedAt = model.CreatedAt
	return nil
}

// UpdateTask implements TaskWriter.UpdateTask
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&TaskModel{ID: task.ID}).
			Select("name", "priority", "completed_workload", "total_workload", "completed").
			Updates(domainToTaskModel(*task))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("task %d: %w", task.ID, domain.ErrTaskNotFound)
		}
		return nil
	}, 3)
}

// DeleteTask implements TaskWriter.DeleteTask
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id uint) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Delete(&TaskModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("task %d: %w", id, domain.ErrTaskNotFound)
		}
		return nil
	}, 3)
}
