package services

import (
	"context"
	"time"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
	"github.com/breakwise/breakwise/internal/session"
)

// Hook priorities used by the recorder. Opening runs after the timer reset
// and before the timer start; closing runs after the timer stop.
const (
	PriorityOpenActivity  = 3
	PriorityCloseActivity = 1
)

// ActivityRecorder records every WORK and BREAK session as an activity and
// credits finished work sessions to their task. Completing the task is left
// to the user, who is asked through the work finished handler.
//
// Storage failures are logged and reported through the error handler. They
// never block a state transition.
type ActivityRecorder struct {
	activities ports.ActivityRepository
	handles    []hooks.Handle
	machine    *session.Machine
	now          func() time.Time
	onError      func(error)
	onWorkFinish func(domain.Task)
	tasks        ports.TaskWriter
}

// NewActivityRecorder registers the recorder hooks on machine
func NewActivityRecorder(
	machine *session.Machine,
	activities ports.ActivityRepository,
	tasks ports.TaskWriter,
) *ActivityRecorder {
	r := &ActivityRecorder{
		activities:   activities,
		machine:      machine,
		now:          time.Now,
		onError:      func(error) {},
		onWorkFinish: func(domain.Task) {},
		tasks:        tasks,
	}

	for _, id := range []domain.TimerID{domain.TimerWork, domain.TimerBreak} {
		state := domain.StateWork
		if id == domain.TimerBreak {
			state = domain.StateBreak
		}
		r.handles = append(r.handles,
			machine.After(state, PriorityOpenActivity, r.opener(id)),
			machine.Before(state, PriorityCloseActivity, r.closer(id)),
		)
	}
	return r
}

// SetErrorHandler sets the function receiving storage errors
func (r *ActivityRecorder) SetErrorHandler(fn func(error)) {
	r.onError = fn
}

// SetWorkFinishedHandler sets the function called with the task of every
// finished work session, after its workload was stored
func (r *ActivityRecorder) SetWorkFinishedHandler(fn func(domain.Task)) {
	r.onWorkFinish = fn
}

func (r *ActivityRecorder) opener(id domain.TimerID) session.Hook {
	return func(m *session.Machine) error {
		activity := &domain.Activity{
			Date:             r.now(),
			ExpectedDuration: m.Minutes(id) * 60,
			Kind:             id.ActivityKind(),
		}
		if id == domain.TimerWork && m.Task() != nil {
			taskID := m.Task().ID
			activity.TaskID = &taskID
		}
		m.SetActivity(activity)

		if err := r.activities.AddActivity(context.Background(), activity); err != nil {
			logging.Logger.Error("Failed to record activity", "kind", activity.Kind, "error", err)
			r.onError(err)
			return nil
		}
		logging.Logger.Info("Activity opened",
			"id", activity.ID,
			"kind", activity.Kind,
			"expected_duration", activity.ExpectedDuration)
		return nil
	}
}

func (r *ActivityRecorder) closer(id domain.TimerID) session.Hook {
	return func(m *session.Machine) error {
		activity := m.Activity()
		if activity == nil {
			return nil
		}
		m.SetActivity(nil)

		duration := m.Minutes(id)*60 - m.StopTime()
		activity.Duration = &duration

		ctx := context.Background()
		if activity.ID != 0 {
			if err := r.activities.UpdateActivity(ctx, activity); err != nil {
				logging.Logger.Error("Failed to close activity", "id", activity.ID, "error", err)
				r.onError(err)
			} else {
				logging.Logger.Info("Activity closed", "id", activity.ID, "duration", duration)
			}
		}

		if id == domain.TimerWork && m.Task() != nil {
			task := m.Task()
			task.AddWorkload()
			if err := r.tasks.UpdateTask(ctx, task); err != nil {
				logging.Logger.Error("Failed to update task workload", "task_id", task.ID, "error", err)
				r.onError(err)
			} else {
				logging.Logger.Info("Task workload updated",
					"task_id", task.ID,
					"completed_workload", task.CompletedWorkload)
				r.onWorkFinish(*task)
			}
		}
		return nil
	}
}

// Close removes the recorder hooks
func (r *ActivityRecorder) Close() error {
	for _, h := range r.handles {
		if err := r.machine.Unhook(h); err != nil {
			return err
		}
	}
	r.handles = nil
	return nil
}
