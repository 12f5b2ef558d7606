package ticker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/breakwise/breakwise/internal/ports"
)

// Queue serializes tick callbacks and other work onto the goroutine that
// calls Run. Timers, the state machine and their hooks are touched from
// that goroutine only.
type Queue struct {
	jobs chan func()
}

// NewQueue creates a queue with room for size pending jobs
func NewQueue(size int) *Queue {
	return &Queue{jobs: make(chan func(), size)}
}

// Factory returns a ports.TickSourceFactory whose sources post to the queue
func (q *Queue) Factory() ports.TickSourceFactory {
	return func() ports.TickSource {
		return &QueueSource{queue: q}
	}
}

// Post enqueues fn; it blocks while the queue is full or until ctx is done
func (q *Queue) Post(ctx context.Context, fn func()) error {
	select {
	case q.jobs <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted jobs until ctx is done
func (q *Queue) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case job := <-q.jobs:
			job()
		}
	}
}

// QueueSource implements ports.TickSource with a time.Ticker goroutine that
// posts to a Queue. Start and Stop must be called on the queue goroutine.
type QueueSource struct {
	active bool
	gen    uint64
	queue  *Queue
	stop   chan struct{}
	wg     sync.WaitGroup
}

var _ ports.TickSource = (*QueueSource)(nil)

// Start launches the ticker goroutine
func (s *QueueSource) Start(interval time.Duration, fn func()) error {
	if s.active {
		return fmt.Errorf("tick source already active")
	}
	if interval <= 0 {
		return fmt.Errorf("invalid tick interval %s", interval)
	}

	s.active = true
	s.gen++
	s.stop = make(chan struct{})

	gen := s.gen
	deliver := func() {
		if s.active && s.gen == gen {
			fn()
		}
	}

	s.wg.Add(1)
	go func(stop <-chan struct{}) {
		defer s.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-stop:
				return
			case <-t.C:
				select {
				case s.queue.jobs <- deliver:
				case <-stop:
					return
				}
			}
		}
	}(s.stop)

	return nil
}

// Stop ends the ticker goroutine. Ticks already queued are dropped.
func (s *QueueSource) Stop() error {
	if !s.active {
		return fmt.Errorf("tick source not active")
	}
	s.active = false
	close(s.stop)
	s.wg.Wait()
	return nil
}

// IsActive reports whether the source delivers ticks
func (s *QueueSource) IsActive() bool {
	return s.active
}
