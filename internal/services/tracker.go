package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
	"github.com/breakwise/breakwise/internal/session"
)

// IdleLabel is shown while no countdown is running
const IdleLabel = "Timer: -"

// TrackerDeps are the collaborators of a Tracker
type TrackerDeps struct {
	Notifier   ports.Notifier
	Repository ports.Repository
	Sound      ports.SoundPlayer
	TickSource ports.TickSourceFactory
}

// Tracker assembles the state machine, the countdowns and the activity
// recorder of one running session tracker.
type Tracker struct {
	controller *TimerController
	machine    *session.Machine
	recorder   *ActivityRecorder
	settings   *SettingsService
	tasks      ports.TaskReader
}

// NewTracker loads the settings and wires a tracker in IDLE
func NewTracker(ctx context.Context, deps TrackerDeps) (*Tracker, error) {
	settings := NewSettingsService(deps.Repository)
	current, err := settings.Load(ctx)
	if err != nil {
		return nil, err
	}

	machine := session.NewMachine(current.WorkTime, current.BreakTime)
	controller, err := NewTimerController(machine, settings, deps.Notifier, deps.Sound, deps.TickSource)
	if err != nil {
		return nil, err
	}
	recorder := NewActivityRecorder(machine, deps.Repository, deps.Repository)

	logging.Logger.Info("Tracker ready", "work_time", current.WorkTime, "break_time", current.BreakTime)
	return &Tracker{
		controller: controller,
		machine:    machine,
		recorder:   recorder,
		settings:   settings,
		tasks:      deps.Repository,
	}, nil
}

// Machine returns the session state machine
func (t *Tracker) Machine() *session.Machine { return t.machine }

// Controller returns the timer controller
func (t *Tracker) Controller() *TimerController { return t.controller }

// Recorder returns the activity recorder
func (t *Tracker) Recorder() *ActivityRecorder { return t.recorder }

// Settings returns the settings provider of this tracker
func (t *Tracker) Settings() *SettingsService { return t.settings }

// State returns the current session state
func (t *Tracker) State() domain.SessionState { return t.machine.State() }

// Work starts a work session, bound to the task taskID when it is not nil
func (t *Tracker) Work(ctx context.Context, taskID *uint) error {
	var task *domain.Task
	if taskID != nil {
		found, err := t.tasks.GetTask(ctx, *taskID)
		if err != nil {
			return fmt.Errorf("failed to load task %d: %w", *taskID, err)
		}
		if found.Completed {
			return fmt.Errorf("task %d: %w", *taskID, domain.ErrTaskCompleted)
		}
		task = found
	}
	return t.machine.DoWork(task)
}

// Break starts a break
func (t *Tracker) Break() error { return t.machine.DoBreak() }

// Idle stops tracking
func (t *Tracker) Idle() error { return t.machine.DoIdle() }

// SecondsLeft returns the counter of the running countdown, 0 when idle
func (t *Tracker) SecondsLeft() int {
	id, ok := domain.TimerIDFor(t.machine.State())
	if !ok {
		return 0
	}
	return t.controller.SecondsLeft(id)
}

// Label renders the countdown the way the status line shows it
func (t *Tracker) Label() string {
	switch t.machine.State() {
	case domain.StateWork:
		return "Work: " + domain.FormatSeconds(t.SecondsLeft())
	case domain.StateBreak:
		return "Break: " + domain.FormatSeconds(t.SecondsLeft())
	default:
		return IdleLabel
	}
}

// UpdateSettings stores settings and applies them to the running tracker
func (t *Tracker) UpdateSettings(ctx context.Context, s domain.Settings) error {
	return t.settings.Update(ctx, s)
}

// Shutdown idles the tracker so the open activity is closed
func (t *Tracker) Shutdown() error {
	if t.machine.State() == domain.StateIdle {
		return nil
	}
	logging.Logger.Info("Idling before shutdown", "state", t.machine.State())
	return t.machine.DoIdle()
}

// Close idles the tracker and removes every hook
func (t *Tracker) Close() error {
	return errors.Join(t.Shutdown(), t.recorder.Close(), t.controller.Close())
}
