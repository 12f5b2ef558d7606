package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/ports/mocks"
)

func TestTaskService_Add(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("AddTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Name == "write tests" && task.Priority == 2 && task.TotalWorkload == 4
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Task).ID = 11
	}).Return(nil).Once()

	task, err := NewTaskService(repo).Add(context.Background(), AddTaskParams{
		Name:          "  write tests ",
		Priority:      2,
		TotalWorkload: 4,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), task.ID)
	assert.False(t, task.Completed)
}

func TestTaskService_AddValidates(t *testing.T) {
	repo := mocks.NewMockRepository(t)

	_, err := NewTaskService(repo).Add(context.Background(), AddTaskParams{Name: " "})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "AddTask", mock.Anything, mock.Anything)
}

func TestTaskService_ListOrdersByPriority(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("ListTasks", mock.Anything, false).Return([]domain.Task{
		{ID: 1, Priority: 1},
		{ID: 2, Priority: 3},
		{ID: 3, Priority: 1},
		{ID: 4, Priority: 2},
	}, nil).Once()

	tasks, err := NewTaskService(repo).List(context.Background(), false)

	require.NoError(t, err)
	ids := make([]uint, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	assert.Equal(t, []uint{2, 4, 1, 3}, ids)
}

func TestTaskService_Edit(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("GetTask", mock.Anything, uint(3)).Return(&domain.Task{ID: 3, Name: "old", TotalWorkload: 2}, nil).Once()
	repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Name == "new" && task.TotalWorkload == 5 && task.Priority == 0
	})).Return(nil).Once()

	name, total := "new", 5
	task, err := NewTaskService(repo).Edit(context.Background(), 3, EditTaskParams{Name: &name, TotalWorkload: &total})

	require.NoError(t, err)
	assert.Equal(t, "new", task.Name)
}

func TestTaskService_Complete(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("GetTask", mock.Anything, uint(3)).Return(&domain.Task{ID: 3, Name: "x"}, nil).Once()
	repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Completed
	})).Return(nil).Once()

	task, err := NewTaskService(repo).Complete(context.Background(), 3)

	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func TestTaskService_CompleteTwiceFails(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("GetTask", mock.Anything, uint(3)).Return(&domain.Task{ID: 3, Completed: true}, nil).Once()

	_, err := NewTaskService(repo).Complete(context.Background(), 3)

	assert.ErrorIs(t, err, domain.ErrTaskCompleted)
}

func TestTaskService_Delete(t *testing.T) {
	repo := mocks.NewMockRepository(t)
	repo.On("DeleteTask", mock.Anything, uint(3)).Return(nil).Once()
	repo.On("DeleteTask", mock.Anything, uint(4)).Return(domain.ErrTaskNotFound).Once()
	repo.On("DeleteTask", mock.Anything, uint(5)).Return(errors.New("io")).Once()

	svc := NewTaskService(repo)

	require.NoError(t, svc.Delete(context.Background(), 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 4), domain.ErrTaskNotFound)
	assert.Error(t, svc.Delete(context.Background(), 5))
}
