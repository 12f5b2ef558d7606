package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueSourceTicksOnQueueGoroutine(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	queue := NewQueue(4)
	src := queue.Factory()()

	var ticks atomic.Int32
	done := make(chan struct{})

	require.NoError(t, queue.Post(ctx, func() {
		assert.NoError(t, src.Start(5*time.Millisecond, func() {
			if ticks.Add(1) == 3 {
				assert.NoError(t, src.Stop())
				close(done)
			}
		}))
	}))

	go func() { _ = queue.Run(ctx) }()

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("ticks were not delivered")
	}

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(3), ticks.Load(), "no tick after Stop")
	assert.False(t, src.IsActive())
}

func TestQueueRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	queue := NewQueue(1)

	errCh := make(chan error, 1)
	go func() { errCh <- queue.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
}

func TestQueueSourceStartStopErrors(t *testing.T) {
	src := NewQueue(1).Factory()()

	assert.Error(t, src.Stop())
	assert.Error(t, src.Start(-time.Second, func() {}))
	require.NoError(t, src.Start(time.Hour, func() {}))
	assert.Error(t, src.Start(time.Hour, func() {}))
	require.NoError(t, src.Stop())
}
