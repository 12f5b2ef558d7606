package ticker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopSourceDeliversWhileActive(t *testing.T) {
	loop := NewLoop()
	src := loop.Factory()().(*LoopSource)

	var ticks int
	require.NoError(t, src.Start(time.Second, func() { ticks++ }))
	assert.True(t, src.IsActive())
	assert.NotNil(t, loop.Pending())
	assert.Nil(t, loop.Pending(), "pending sources are scheduled once")

	msg := TickMsg{gen: src.gen, source: src}
	assert.NotNil(t, loop.Deliver(msg))
	assert.NotNil(t, loop.Deliver(msg))
	assert.Equal(t, 2, ticks)
}

func TestLoopSourceDropsStaleTicks(t *testing.T) {
	loop := NewLoop()
	src := loop.Factory()().(*LoopSource)

	var ticks int
	require.NoError(t, src.Start(time.Second, func() { ticks++ }))
	stale := TickMsg{gen: src.gen, source: src}

	require.NoError(t, src.Stop())
	assert.False(t, src.IsActive())
	assert.Nil(t, loop.Deliver(stale))

	require.NoError(t, src.Start(time.Second, func() { ticks++ }))
	assert.Nil(t, loop.Deliver(stale), "tick from a previous run is dropped")
	assert.Equal(t, 0, ticks)
}

func TestLoopSourceStopInsideCallback(t *testing.T) {
	loop := NewLoop()
	src := loop.Factory()().(*LoopSource)

	require.NoError(t, src.Start(time.Second, func() { _ = src.Stop() }))
	assert.Nil(t, loop.Deliver(TickMsg{gen: src.gen, source: src}))
	assert.False(t, src.IsActive())
}

func TestLoopSourceStartStopErrors(t *testing.T) {
	src := NewLoop().Factory()()

	assert.Error(t, src.Stop())
	assert.Error(t, src.Start(0, func() {}))
	require.NoError(t, src.Start(time.Second, func() {}))
	assert.Error(t, src.Start(time.Second, func() {}))
}
