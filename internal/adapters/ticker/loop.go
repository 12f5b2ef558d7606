package ticker

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakwise/breakwise/internal/ports"
)

// TickMsg is delivered by tea.Tick to the program owning a Loop
type TickMsg struct {
	gen    uint64
	source *LoopSource
}

// Loop hands out tick sources driven by a bubbletea program.
// It must be used from the program's Update goroutine only.
type Loop struct {
	pending []*LoopSource
}

// NewLoop creates an empty loop
func NewLoop() *Loop {
	return &Loop{}
}

// Factory returns a ports.TickSourceFactory bound to the loop
func (l *Loop) Factory() ports.TickSourceFactory {
	return func() ports.TickSource {
		return &LoopSource{loop: l}
	}
}

// Pending schedules the first tick of every source started since the last call
func (l *Loop) Pending() tea.Cmd {
	if len(l.pending) == 0 {
		return nil
	}

	cmds := make([]tea.Cmd, 0, len(l.pending))
	for _, s := range l.pending {
		if s.active {
			cmds = append(cmds, s.next())
		}
	}
	l.pending = nil
	return tea.Batch(cmds...)
}

// Deliver runs the callback for msg and schedules the following tick.
// Ticks issued before the last Stop are dropped.
func (l *Loop) Deliver(msg TickMsg) tea.Cmd {
	s := msg.source
	if s == nil || !s.active || s.gen != msg.gen {
		return nil
	}

	s.fn()

	if !s.active || s.gen != msg.gen {
		return nil
	}
	return s.next()
}

// LoopSource implements ports.TickSource on top of tea.Tick
type LoopSource struct {
	active   bool
	fn       func()
	gen      uint64
	interval time.Duration
	loop     *Loop
}

var _ ports.TickSource = (*LoopSource)(nil)

// Start arms the source; the first tick is scheduled by Loop.Pending
func (s *LoopSource) Start(interval time.Duration, fn func()) error {
	if s.active {
		return fmt.Errorf("tick source already active")
	}
	if interval <= 0 {
		return fmt.Errorf("invalid tick interval %s", interval)
	}

	s.active = true
	s.fn = fn
	s.gen++
	s.interval = interval
	s.loop.pending = append(s.loop.pending, s)
	return nil
}

// Stop disarms the source; ticks already in flight are discarded
func (s *LoopSource) Stop() error {
	if !s.active {
		return fmt.Errorf("tick source not active")
	}
	s.active = false
	s.fn = nil
	return nil
}

// IsActive reports whether the source delivers ticks
func (s *LoopSource) IsActive() bool {
	return s.active
}

func (s *LoopSource) next() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return TickMsg{gen: gen, source: s}
	})
}
