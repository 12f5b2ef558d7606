package session

import (
	"fmt"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
)

// Phase tells whether a hook runs before leaving or after entering a state
type Phase int

const (
	PhaseBefore Phase = iota
	PhaseAfter
)

func (p Phase) String() string {
	if p == PhaseBefore {
		return "before"
	}
	return "after"
}

// Topic is the hook key of the state machine
type Topic struct {
	Phase Phase
	State domain.SessionState
}

func (t Topic) String() string {
	return fmt.Sprintf("%s %s", t.Phase, t.State)
}

// Hook is invoked with the machine during a transition
type Hook = hooks.Callback[*Machine]

// Machine tracks the WORK/BREAK/IDLE state and the session scoped fields
// shared by everything reacting to transitions.
type Machine struct {
	activity  *domain.Activity
	breakTime int
	hooks     *hooks.Registry[Topic, *Machine]
	state     domain.SessionState
	stopTime  int
	task      *domain.Task
	workTime  int
}

// NewMachine creates a machine in IDLE with the given durations in minutes
func NewMachine(workTime, breakTime int) *Machine {
	return &Machine{
		breakTime: breakTime,
		hooks:     hooks.NewRegistry[Topic, *Machine](),
		state:     domain.StateIdle,
		workTime:  workTime,
	}
}

// Before registers fn to run before state is left
func (m *Machine) Before(state domain.SessionState, priority int, fn Hook) hooks.Handle {
	return m.hooks.Register(Topic{Phase: PhaseBefore, State: state}, priority, fn)
}

// After registers fn to run after state is entered
func (m *Machine) After(state domain.SessionState, priority int, fn Hook) hooks.Handle {
	return m.hooks.Register(Topic{Phase: PhaseAfter, State: state}, priority, fn)
}

// Unhook removes a hook registered with Before or After
func (m *Machine) Unhook(h hooks.Handle) error {
	return m.hooks.Unregister(h)
}

// ChangeState moves the machine to next.
//
// Before hooks of the current state complete before the state changes, and
// after hooks of the new state run once it changed. A failing before hook
// leaves the state untouched. A failing after hook is returned with the new
// state already in place.
func (m *Machine) ChangeState(next domain.SessionState) error {
	if next == m.state {
		return fmt.Errorf("%w: already in %s", domain.ErrIllegalStateTransition, next)
	}
	if !next.Valid() {
		return fmt.Errorf("%w: unknown state %q", domain.ErrIllegalStateTransition, next)
	}

	prev := m.state
	logging.Logger.Debug("Changing session state", "from", prev, "to", next)

	if err := m.hooks.Dispatch(Topic{Phase: PhaseBefore, State: prev}, m); err != nil {
		logging.Logger.Error("Before hook failed, state unchanged", "from", prev, "to", next, "error", err)
		return err
	}

	m.state = next

	if err := m.hooks.Dispatch(Topic{Phase: PhaseAfter, State: next}, m); err != nil {
		logging.Logger.Error("After hook failed", "from", prev, "to", next, "error", err)
		return err
	}

	logging.Logger.Info("Session state changed", "from", prev, "to", next)
	return nil
}

// DoWork starts a work session, optionally bound to task
func (m *Machine) DoWork(task *domain.Task) error {
	if m.state == domain.StateWork {
		return fmt.Errorf("%w: already in %s", domain.ErrIllegalStateTransition, domain.StateWork)
	}
	prev := m.task
	m.task = task
	if err := m.ChangeState(domain.StateWork); err != nil {
		if m.state != domain.StateWork {
			m.task = prev
		}
		return err
	}
	return nil
}

// DoBreak starts a break
func (m *Machine) DoBreak() error {
	return m.leaveWorkTo(domain.StateBreak)
}

// DoIdle stops tracking
func (m *Machine) DoIdle() error {
	return m.leaveWorkTo(domain.StateIdle)
}

func (m *Machine) leaveWorkTo(next domain.SessionState) error {
	err := m.ChangeState(next)
	if m.state != domain.StateWork {
		m.task = nil
	}
	return err
}

// State returns the current state
func (m *Machine) State() domain.SessionState { return m.state }

// Task returns the task of the running work session, if any
func (m *Machine) Task() *domain.Task { return m.task }

// Activity returns the activity opened for the running session, if any
func (m *Machine) Activity() *domain.Activity { return m.activity }

// SetActivity stores the activity of the running session
func (m *Machine) SetActivity(a *domain.Activity) { m.activity = a }

// StopTime returns the remaining seconds captured when the last timer stopped
func (m *Machine) StopTime() int { return m.stopTime }

// SetStopTime records the remaining seconds of a stopped timer
func (m *Machine) SetStopTime(seconds int) { m.stopTime = seconds }

// WorkTime returns the configured work duration in minutes
func (m *Machine) WorkTime() int { return m.workTime }

// SetWorkTime updates the configured work duration in minutes
func (m *Machine) SetWorkTime(minutes int) { m.workTime = minutes }

// BreakTime returns the configured break duration in minutes
func (m *Machine) BreakTime() int { return m.breakTime }

// SetBreakTime updates the configured break duration in minutes
func (m *Machine) SetBreakTime(minutes int) { m.breakTime = minutes }

// Minutes returns the configured duration of the timer bound to id
func (m *Machine) Minutes(id domain.TimerID) int {
	if id == domain.TimerBreak {
		return m.breakTime
	}
	return m.workTime
}
