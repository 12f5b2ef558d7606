package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/breakwise/breakwise/internal/countdown"
	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
	"github.com/breakwise/breakwise/internal/session"
)

// Hook priorities used by the controller
const (
	PriorityStopTimer  = 5
	PriorityResetTimer = 4
	PriorityStartTimer = 1
	PriorityAlarm      = 1
)

// TimerController binds the WORK and BREAK countdowns to the session state
// machine and to the settings provider.
type TimerController struct {
	clock            *countdown.Context
	machine          *session.Machine
	machineHooks     []hooks.Handle
	notifier         ports.Notifier
	pending          map[domain.TimerID]int
	playSound        bool
	settings         ports.SettingsProvider
	settingsHandle   hooks.Handle
	showNotification bool
	sound            ports.SoundPlayer
	timerHooks       []hooks.Handle
	timers           map[domain.TimerID]*countdown.Timer
}

// NewTimerController creates both timers and registers all hooks
func NewTimerController(
	machine *session.Machine,
	settings ports.SettingsProvider,
	notifier ports.Notifier,
	sound ports.SoundPlayer,
	newSource ports.TickSourceFactory,
) (*TimerController, error) {
	c := &TimerController{
		clock:    countdown.NewContext(),
		machine:  machine,
		notifier: notifier,
		pending:  make(map[domain.TimerID]int, 2),
		settings: settings,
		sound:    sound,
		timers:   make(map[domain.TimerID]*countdown.Timer, 2),
	}

	current := settings.Current()
	for _, id := range []domain.TimerID{domain.TimerWork, domain.TimerBreak} {
		timer, err := countdown.NewTimer(c.clock, id, current.Minutes(id)*60, newSource())
		if err != nil {
			return nil, fmt.Errorf("failed to create %s timer: %w", id, err)
		}
		c.timers[id] = timer
	}
	c.cacheSettings(current)
	machine.SetWorkTime(current.WorkTime)
	machine.SetBreakTime(current.BreakTime)

	c.bind(domain.StateWork, domain.TimerWork)
	c.bind(domain.StateBreak, domain.TimerBreak)
	c.settingsHandle = settings.Subscribe(c.OnSettingsChanged)

	logging.Logger.Debug("Timer controller ready",
		"work_seconds", c.timers[domain.TimerWork].Seconds(),
		"break_seconds", c.timers[domain.TimerBreak].Seconds())
	return c, nil
}

func (c *TimerController) bind(state domain.SessionState, id domain.TimerID) {
	timer := c.timers[id]

	c.machineHooks = append(c.machineHooks,
		c.machine.Before(state, PriorityStopTimer, func(m *session.Machine) error {
			left, err := timer.Stop()
			if errors.Is(err, domain.ErrTimerStopped) {
				// the timer failed to start when the state was entered
				logging.Logger.Warn("Leaving state with a stopped timer", "state", state, "timer", id)
				left, err = timer.SecondsLeft(), nil
			}
			if err != nil {
				return err
			}
			m.SetStopTime(left)
			return nil
		}),
		c.machine.After(state, PriorityResetTimer, func(*session.Machine) error {
			if minutes, ok := c.pending[id]; ok {
				if err := c.applyMinutes(id, minutes); err != nil {
					return err
				}
				delete(c.pending, id)
			}
			return timer.Reset()
		}),
		c.machine.After(state, PriorityStartTimer, func(*session.Machine) error {
			return timer.Start()
		}),
	)

	c.timerHooks = append(c.timerHooks, c.clock.OnAlarm(id, PriorityAlarm, c.onAlarm))
}

// onAlarm routes an expired countdown to the notification and sound ports.
// Port failures are logged and never affect timer state.
func (c *TimerController) onAlarm(t *countdown.Timer) error {
	if c.showNotification {
		if err := c.notifier.Notify(context.Background(), t.ID()); err != nil {
			logging.Logger.Warn("Failed to show notification", "timer", t.ID(), "error", err)
		}
	}
	if c.playSound {
		if err := c.sound.PlaySoundForEvent(string(t.ID())); err != nil {
			logging.Logger.Warn("Failed to play sound", "timer", t.ID(), "error", err)
		}
	}
	return nil
}

// OnSettingsChanged reconfigures the timers from a settings snapshot.
// Stopped timers take the new length at once. A running timer keeps its
// length until its state is entered again and the change is reported as
// ErrTimerRunning.
func (c *TimerController) OnSettingsChanged(s domain.Settings) error {
	c.cacheSettings(s)

	var errs []error
	for _, id := range []domain.TimerID{domain.TimerWork, domain.TimerBreak} {
		minutes := s.Minutes(id)
		delete(c.pending, id)
		if minutes*60 == c.timers[id].Seconds() {
			continue
		}
		if err := c.applyMinutes(id, minutes); err != nil {
			c.pending[id] = minutes
			logging.Logger.Info("Timer length change deferred", "timer", id, "minutes", minutes)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *TimerController) applyMinutes(id domain.TimerID, minutes int) error {
	if err := c.timers[id].SetSeconds(minutes * 60); err != nil {
		return err
	}
	if id == domain.TimerWork {
		c.machine.SetWorkTime(minutes)
	} else {
		c.machine.SetBreakTime(minutes)
	}
	logging.Logger.Info("Timer length changed", "timer", id, "seconds", minutes*60)
	return nil
}

func (c *TimerController) cacheSettings(s domain.Settings) {
	c.playSound = s.PlaySound
	c.showNotification = s.ShowNotification
}

// Clock exposes the countdown context so observers can subscribe to ticks
func (c *TimerController) Clock() *countdown.Context {
	return c.clock
}

// Timer returns the timer bound to id
func (c *TimerController) Timer(id domain.TimerID) *countdown.Timer {
	return c.timers[id]
}

// SecondsLeft returns the counter of the timer bound to id
func (c *TimerController) SecondsLeft(id domain.TimerID) int {
	return c.clock.SecondsLeft(id)
}

// Close removes every registration and stops a running timer
func (c *TimerController) Close() error {
	for _, h := range c.machineHooks {
		if err := c.machine.Unhook(h); err != nil {
			return err
		}
	}
	c.machineHooks = nil

	for _, h := range c.timerHooks {
		if err := c.clock.Unregister(h); err != nil {
			return err
		}
	}
	c.timerHooks = nil

	if !c.settingsHandle.IsZero() {
		if err := c.settings.Unsubscribe(c.settingsHandle); err != nil {
			return err
		}
		c.settingsHandle = hooks.Handle{}
	}

	for _, timer := range c.timers {
		if err := timer.Close(); err != nil {
			return err
		}
	}
	return nil
}
