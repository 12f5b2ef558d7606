package ports

import "time"

// TickSource drives a countdown timer.
// Implementations must not deliver fn after Stop returns, and must deliver
// ticks on the goroutine that owns the timer.
type TickSource interface {
	Start(interval time.Duration, fn func()) error
	Stop() error
	IsActive() bool
}

// TickSourceFactory creates one tick source per timer
type TickSourceFactory func() TickSource
