package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/breakwise/breakwise/internal/adapters/lock"
	"github.com/breakwise/breakwise/internal/adapters/ticker"
	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/countdown"
	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
)

const headlessQueueSize = 16

// HeadlessCmd runs the tracker without a TUI
type HeadlessCmd struct {
	Quiet bool `help:"Do not print the countdown on every tick" short:"q"`
}

// Run executes the headless tracker until "quit", the end of its input or a signal
func (h *HeadlessCmd) Run(cli *CLI) error {
	fileLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		return err
	}
	defer fileLock.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := ticker.NewQueue(headlessQueueSize)
	tracker, err := cli.Container.NewTracker(ctx, queue.Factory())
	if err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}

	console := newHeadlessConsole(tracker, stdout, cancel, !h.Quiet)
	defer func() {
		// the queue goroutine has exited, so closing here is race free
		console.close()
		if err := tracker.Close(); err != nil {
			logging.Logger.Error("Failed to close tracker", "error", err)
		}
	}()

	lines := make(chan string)
	go scanLines(stdin, lines)

	logging.Logger.Info("Headless tracker started")
	fmt.Fprintln(stdout, tracker.Label())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return queue.Run(gctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					// end of input acts as "quit"
					logging.Logger.Info("Headless input closed, quitting")
					line = "quit"
				}
				if err := queue.Post(gctx, func() { console.handle(gctx, line) }); err != nil || !ok {
					return nil
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Logger.Info("Headless tracker stopped")
	return nil
}

// scanLines forwards lines of r until EOF. It is not tied to a context
// because a blocked read cannot be interrupted.
func scanLines(r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines <- scanner.Text()
	}
}

// headlessConsole executes text commands against a tracker and prints the
// countdown. All methods run on the queue goroutine.
type headlessConsole struct {
	handles []hooks.Handle
	out     io.Writer
	quit    context.CancelFunc
	tracker *services.Tracker
}

func newHeadlessConsole(tracker *services.Tracker, out io.Writer, quit context.CancelFunc, printTicks bool) *headlessConsole {
	c := &headlessConsole{out: out, quit: quit, tracker: tracker}

	clock := tracker.Controller().Clock()
	for _, id := range []domain.TimerID{domain.TimerWork, domain.TimerBreak} {
		if printTicks {
			// lowest priority: runs after the decrement and the alarm check
			c.handles = append(c.handles, clock.OnTick(id, 0, func(*countdown.Timer) error {
				fmt.Fprintln(c.out, c.tracker.Label())
				return nil
			}))
		}
		c.handles = append(c.handles, clock.OnAlarm(id, 0, func(t *countdown.Timer) error {
			fmt.Fprintf(c.out, "%s time is over\n", t.ID())
			return nil
		}))
	}
	tracker.Recorder().SetWorkFinishedHandler(func(task domain.Task) {
		fmt.Fprintf(c.out, "Finished a session on task %d: %s, run \"breakwise tasks done %d\" if it is complete\n",
			task.ID, task.Label(), task.ID)
	})
	return c
}

// handle executes one command line
func (c *headlessConsole) handle(ctx context.Context, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	var err error
	switch fields[0] {
	case "work":
		err = c.work(ctx, fields[1:])
	case "break":
		err = c.tracker.Break()
	case "idle":
		err = c.tracker.Idle()
	case "status":
	case "quit":
		if err := c.tracker.Shutdown(); err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		fmt.Fprintln(c.out, c.tracker.Label())
		c.quit()
		return
	default:
		fmt.Fprintf(c.out, "unknown command %q (work [task-id], break, idle, status, quit)\n", fields[0])
		return
	}

	if err != nil {
		logging.Logger.Warn("Headless command failed", "command", line, "error", err)
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, c.tracker.Label())
}

func (c *headlessConsole) work(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.tracker.Work(ctx, nil)
	}
	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", args[0])
	}
	taskID := uint(id)
	return c.tracker.Work(ctx, &taskID)
}

// close removes the console's countdown hooks
func (c *headlessConsole) close() {
	c.tracker.Recorder().SetWorkFinishedHandler(func(domain.Task) {})
	clock := c.tracker.Controller().Clock()
	for _, h := range c.handles {
		if err := clock.Unregister(h); err != nil {
			logging.Logger.Warn("Failed to remove headless hook", "error", err)
		}
	}
	c.handles = nil
}
