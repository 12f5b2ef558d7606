// Package countdown implements one second countdown timers whose ticks and
// alarms are published through a shared priority registry.
//
// Timers of one Context are mutually exclusive: at most one is active at a
// time and the active timer owns the counter that observers read.
package countdown

import (
	"fmt"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
)

// Event is the kind of notification a timer publishes
type Event int

const (
	EventTick Event = iota
	EventAlarm
)

func (e Event) String() string {
	if e == EventAlarm {
		return "alarm"
	}
	return "tick"
}

// Topic is the hook key of timer events
type Topic struct {
	Event Event
	Timer domain.TimerID
}

func (t Topic) String() string {
	return fmt.Sprintf("%s %s", t.Timer, t.Event)
}

// Hook is invoked with the timer that published the event
type Hook = hooks.Callback[*Timer]

// Priorities of the callbacks every timer registers for its own ticks
const (
	PriorityDecrement  = 5
	PriorityAlarmCheck = 4
)

// Context groups the timers that share one event registry
type Context struct {
	active *Timer
	events *hooks.Registry[Topic, *Timer]
	timers map[domain.TimerID]*Timer
}

// NewContext creates an empty timer context
func NewContext() *Context {
	return &Context{
		events: hooks.NewRegistry[Topic, *Timer](),
		timers: make(map[domain.TimerID]*Timer),
	}
}

// OnTick registers fn for every tick of the timer id
func (c *Context) OnTick(id domain.TimerID, priority int, fn Hook) hooks.Handle {
	return c.events.Register(Topic{Event: EventTick, Timer: id}, priority, fn)
}

// OnAlarm registers fn for the alarm of the timer id
func (c *Context) OnAlarm(id domain.TimerID, priority int, fn Hook) hooks.Handle {
	return c.events.Register(Topic{Event: EventAlarm, Timer: id}, priority, fn)
}

// Unregister removes a tick or alarm callback
func (c *Context) Unregister(h hooks.Handle) error {
	return c.events.Unregister(h)
}

// Active returns the running timer, if any
func (c *Context) Active() (*Timer, bool) {
	return c.active, c.active != nil
}

// Timer looks a timer up by identifier
func (c *Context) Timer(id domain.TimerID) (*Timer, bool) {
	t, ok := c.timers[id]
	return t, ok
}

// SecondsLeft returns the counter of the timer id, or 0 if it does not exist
func (c *Context) SecondsLeft(id domain.TimerID) int {
	if t, ok := c.timers[id]; ok {
		return t.SecondsLeft()
	}
	return 0
}

func (c *Context) dispatch(id domain.TimerID, ev Event, t *Timer) error {
	return c.events.Dispatch(Topic{Event: ev, Timer: id}, t)
}
