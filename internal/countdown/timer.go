package countdown

import (
	"fmt"
	"time"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// TickInterval is the period of every countdown tick
const TickInterval = time.Second

// Timer counts down from a configured number of seconds, one tick per second.
// The alarm fires on the tick that reaches exactly zero, after which the
// timer keeps counting into negative values until it is stopped.
type Timer struct {
	ctx         *Context
	handles     []hooks.Handle
	id          domain.TimerID
	running     bool
	seconds     int
	secondsLeft int
	source      ports.TickSource
}

// NewTimer creates a stopped timer bound to id and registers its tick handling
func NewTimer(ctx *Context, id domain.TimerID, seconds int, source ports.TickSource) (*Timer, error) {
	if _, exists := ctx.timers[id]; exists {
		return nil, fmt.Errorf("timer %s already exists", id)
	}

	t := &Timer{
		ctx:         ctx,
		id:          id,
		seconds:     seconds,
		secondsLeft: seconds,
		source:      source,
	}
	t.handles = []hooks.Handle{
		ctx.OnTick(id, PriorityDecrement, decrement),
		ctx.OnTick(id, PriorityAlarmCheck, checkAlarm),
	}
	ctx.timers[id] = t

	return t, nil
}

func decrement(t *Timer) error {
	t.secondsLeft--
	return nil
}

func checkAlarm(t *Timer) error {
	if t.secondsLeft != 0 {
		return nil
	}
	logging.Logger.Info("Countdown reached zero", "timer", t.id)
	return t.ctx.dispatch(t.id, EventAlarm, t)
}

// ID returns the timer identifier
func (t *Timer) ID() domain.TimerID { return t.id }

// Seconds returns the configured countdown length
func (t *Timer) Seconds() int { return t.seconds }

// SecondsLeft returns the current counter, negative once overdue
func (t *Timer) SecondsLeft() int { return t.secondsLeft }

// Running reports whether the timer is counting
func (t *Timer) Running() bool { return t.running }

// SetSeconds changes the configured length. It fails while running.
func (t *Timer) SetSeconds(seconds int) error {
	if t.running {
		return fmt.Errorf("cannot change %s timer length: %w", t.id, domain.ErrTimerRunning)
	}
	t.seconds = seconds
	return nil
}

// Reset sets the counter back to the configured length. It fails while running.
func (t *Timer) Reset() error {
	if t.running {
		return fmt.Errorf("cannot reset %s timer: %w", t.id, domain.ErrTimerRunning)
	}
	t.secondsLeft = t.seconds
	return nil
}

// Start begins ticking and makes t the active timer of its context
func (t *Timer) Start() error {
	if t.running {
		return fmt.Errorf("cannot start %s timer: %w", t.id, domain.ErrTimerRunning)
	}
	if active, ok := t.ctx.Active(); ok {
		return fmt.Errorf("cannot start %s timer while %s is active: %w", t.id, active.id, domain.ErrTimerBusy)
	}

	if err := t.source.Start(TickInterval, t.tick); err != nil {
		return fmt.Errorf("failed to start %s tick source: %w", t.id, err)
	}

	t.running = true
	t.ctx.active = t
	logging.Logger.Debug("Timer started", "timer", t.id, "seconds_left", t.secondsLeft)
	return nil
}

// Stop halts ticking and returns the counter at the moment of stopping
func (t *Timer) Stop() (int, error) {
	if !t.running {
		return 0, fmt.Errorf("cannot stop %s timer: %w", t.id, domain.ErrTimerStopped)
	}

	if err := t.source.Stop(); err != nil {
		return 0, fmt.Errorf("failed to stop %s tick source: %w", t.id, err)
	}

	t.running = false
	t.ctx.active = nil
	logging.Logger.Debug("Timer stopped", "timer", t.id, "seconds_left", t.secondsLeft)
	return t.secondsLeft, nil
}

// Close stops the timer if needed and removes it from its context
func (t *Timer) Close() error {
	if t.running {
		if _, err := t.Stop(); err != nil {
			return err
		}
	}
	for _, h := range t.handles {
		if err := t.ctx.Unregister(h); err != nil {
			return err
		}
	}
	t.handles = nil
	delete(t.ctx.timers, t.id)
	return nil
}

func (t *Timer) tick() {
	if !t.running {
		return
	}
	if err := t.ctx.dispatch(t.id, EventTick, t); err != nil {
		logging.Logger.Error("Timer tick failed", "timer", t.id, "error", err)
	}
}
