package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
)

var fixedNow = time.Date(2024, 3, 4, 9, 30, 0, 0, time.UTC)

func newRecorderHarness(t *testing.T, s domain.Settings) (*controllerHarness, *ActivityRecorder) {
	t.Helper()
	h := newControllerHarness(t, s)
	r := NewActivityRecorder(h.machine, h.repo, h.repo)
	r.now = func() time.Time { return fixedNow }
	return h, r
}

func assignID(id uint) func(mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*domain.Activity).ID = id
	}
}

func TestActivityRecorder_WorkSessionWithTask(t *testing.T) {
	h, _ := newRecorderHarness(t, quietSettings(20, 5))
	task := &domain.Task{ID: 9, Name: "slides", CompletedWorkload: 1, TotalWorkload: 3}

	h.repo.On("AddActivity", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Kind == domain.ActivityWork &&
			a.ExpectedDuration == 1200 &&
			a.Date.Equal(fixedNow) &&
			a.TaskID != nil && *a.TaskID == 9 &&
			a.Duration == nil
	})).Run(assignID(1)).Return(nil).Once()
	h.repo.On("UpdateActivity", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.ID == 1 && a.Duration != nil && *a.Duration == 15
	})).Return(nil).Once()
	h.repo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(tk *domain.Task) bool {
		return tk.ID == 9 && tk.CompletedWorkload == 2 && !tk.Completed
	})).Return(nil).Once()

	require.NoError(t, h.machine.DoWork(task))
	require.NotNil(t, h.machine.Activity())

	h.source(domain.TimerWork).Advance(15)
	require.NoError(t, h.machine.DoIdle())

	assert.Nil(t, h.machine.Activity())
	assert.Equal(t, 2, task.CompletedWorkload)
}

func TestActivityRecorder_FreeWorkThenBreak(t *testing.T) {
	h, _ := newRecorderHarness(t, quietSettings(1, 1))

	h.repo.On("AddActivity", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Kind == domain.ActivityWork && a.TaskID == nil && a.ExpectedDuration == 60
	})).Run(assignID(1)).Return(nil).Once()
	h.repo.On("UpdateActivity", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.ID == 1 && *a.Duration == 70
	})).Return(nil).Once()
	h.repo.On("AddActivity", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Kind == domain.ActivityBreak && a.ExpectedDuration == 60
	})).Run(assignID(2)).Return(nil).Once()

	require.NoError(t, h.machine.DoWork(nil))
	h.source(domain.TimerWork).Advance(70)
	require.NoError(t, h.machine.DoBreak())

	act := h.machine.Activity()
	require.NotNil(t, act)
	assert.Equal(t, uint(2), act.ID)
	assert.Equal(t, domain.ActivityBreak, act.Kind)
	h.repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything)
}

func TestActivityRecorder_FinishedWorkReportsTaskWithoutCompletingIt(t *testing.T) {
	h, r := newRecorderHarness(t, quietSettings(20, 5))
	task := &domain.Task{ID: 4, Name: "slides", CompletedWorkload: 1, TotalWorkload: 2}
	var finished []domain.Task
	r.SetWorkFinishedHandler(func(tk domain.Task) { finished = append(finished, tk) })

	h.repo.On("AddActivity", mock.Anything, mock.Anything).Run(assignID(3)).Return(nil).Twice()
	h.repo.On("UpdateActivity", mock.Anything, mock.Anything).Return(nil).Twice()
	h.repo.On("UpdateTask", mock.Anything, task).Return(nil).Once()

	require.NoError(t, h.machine.DoWork(task))
	require.NoError(t, h.machine.DoBreak())

	assert.False(t, task.Completed)
	require.Len(t, finished, 1)
	assert.Equal(t, uint(4), finished[0].ID)
	assert.Equal(t, 2, finished[0].CompletedWorkload)

	// leaving a break never asks about a task
	require.NoError(t, h.machine.DoIdle())
	assert.Len(t, finished, 1)
}

func TestActivityRecorder_FailedWorkloadUpdateDoesNotReportTask(t *testing.T) {
	h, r := newRecorderHarness(t, quietSettings(20, 5))
	task := &domain.Task{ID: 6, Name: "slides", TotalWorkload: 1}
	var finished []domain.Task
	var reported []error
	r.SetWorkFinishedHandler(func(tk domain.Task) { finished = append(finished, tk) })
	r.SetErrorHandler(func(err error) { reported = append(reported, err) })

	h.repo.On("AddActivity", mock.Anything, mock.Anything).Run(assignID(5)).Return(nil).Once()
	h.repo.On("UpdateActivity", mock.Anything, mock.Anything).Return(nil).Once()
	h.repo.On("UpdateTask", mock.Anything, task).Return(errors.New("locked")).Once()

	require.NoError(t, h.machine.DoWork(task))
	require.NoError(t, h.machine.DoIdle())

	assert.Empty(t, finished)
	assert.Len(t, reported, 1)
}

func TestActivityRecorder_StorageErrorsDoNotBlockTransitions(t *testing.T) {
	h, r := newRecorderHarness(t, quietSettings(20, 5))
	var reported []error
	r.SetErrorHandler(func(err error) { reported = append(reported, err) })

	h.repo.On("AddActivity", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	require.NoError(t, h.machine.DoWork(nil))
	assert.Equal(t, domain.StateWork, h.machine.State())
	assert.True(t, h.controller.Timer(domain.TimerWork).Running())

	require.NoError(t, h.machine.DoIdle())
	assert.Equal(t, domain.StateIdle, h.machine.State())
	require.Len(t, reported, 1)
	h.repo.AssertNotCalled(t, "UpdateActivity", mock.Anything, mock.Anything)
}

func TestActivityRecorder_Close(t *testing.T) {
	h, r := newRecorderHarness(t, quietSettings(20, 5))

	require.NoError(t, r.Close())
	require.NoError(t, h.machine.DoWork(nil))

	assert.Nil(t, h.machine.Activity())
	h.repo.AssertNotCalled(t, "AddActivity", mock.Anything, mock.Anything)
}
