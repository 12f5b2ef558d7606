package ports

import (
	"context"

	"github.com/breakwise/breakwise/internal/domain"
)

// TaskReader reads backlog tasks
type TaskReader interface {
	GetTask(ctx context.Context, id uint) (*domain.Task, error)
	ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error)
}

// TaskWriter creates, updates and deletes backlog tasks
type TaskWriter interface {
	AddTask(ctx context.Context, task *domain.Task) error
	DeleteTask(ctx context.Context, id uint) error
	UpdateTask(ctx context.Context, task *domain.Task) error
}

// TaskRepository is the composite task interface
type TaskRepository interface {
	TaskReader
	TaskWriter
}

// ActivityRepository records work and break sessions
type ActivityRepository interface {
	AddActivity(ctx context.Context, activity *domain.Activity) error
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, activity *domain.Activity) error
}

// SettingsRepository loads and stores the tracker settings
type SettingsRepository interface {
	LoadSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// Repository is the composite interface of the storage adapter
type Repository interface {
	TaskRepository
	ActivityRepository
	SettingsRepository
	Close() error
}
