package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/breakwise/breakwise/internal/domain"
)

// MockRepository is a testify mock of ports.Repository
type MockRepository struct {
	mock.Mock
}

// NewMockRepository creates a mock that asserts its expectations on cleanup
func NewMockRepository(t *testing.T) *MockRepository {
	m := &MockRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRepository) GetTask(ctx context.Context, id uint) (*domain.Task, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *MockRepository) ListTasks(ctx context.Context, includeCompleted bool) ([]domain.Task, error) {
	args := m.Called(ctx, includeCompleted)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *MockRepository) AddTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRepository) DeleteTask(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockRepository) AddActivity(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, error) {
	args := m.Called(ctx, filter)
	activities, _ := args.Get(0).([]domain.Activity)
	return activities, args.Error(1)
}

func (m *MockRepository) UpdateActivity(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockRepository) LoadSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
