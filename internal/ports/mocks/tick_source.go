package mocks

import (
	"errors"
	"time"
)

// ManualTickSource is a ports.TickSource driven by Advance instead of a clock
type ManualTickSource struct {
	fn       func()
	interval time.Duration
	active   bool
	StartErr error
	StopErr  error
	Starts   int
	Stops    int
}

// NewManualTickSource creates an inactive manual tick source
func NewManualTickSource() *ManualTickSource {
	return &ManualTickSource{}
}

// Start records fn as the tick callback
func (s *ManualTickSource) Start(interval time.Duration, fn func()) error {
	if s.StartErr != nil {
		return s.StartErr
	}
	if s.active {
		return errors.New("tick source already active")
	}
	s.active = true
	s.fn = fn
	s.interval = interval
	s.Starts++
	return nil
}

// Stop deactivates the source
func (s *ManualTickSource) Stop() error {
	if s.StopErr != nil {
		return s.StopErr
	}
	s.active = false
	s.fn = nil
	s.Stops++
	return nil
}

// IsActive reports whether Start was called without a matching Stop
func (s *ManualTickSource) IsActive() bool {
	return s.active
}

// Interval returns the interval passed to the last Start
func (s *ManualTickSource) Interval() time.Duration {
	return s.interval
}

// Advance delivers n ticks while the source is active
func (s *ManualTickSource) Advance(n int) {
	for i := 0; i < n && s.active; i++ {
		s.fn()
	}
}
