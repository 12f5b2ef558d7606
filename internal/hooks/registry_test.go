package hooks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
)

type topic string

func recorder(calls *[]string, name string) Callback[int] {
	return func(int) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestDispatch_HighestPriorityFirst(t *testing.T) {
	r := NewRegistry[topic, int]()
	var calls []string

	r.Register("work", 1, recorder(&calls, "p1"))
	r.Register("work", 5, recorder(&calls, "p5"))
	r.Register("work", 3, recorder(&calls, "p3"))

	require.NoError(t, r.Dispatch("work", 0))
	assert.Equal(t, []string{"p5", "p3", "p1"}, calls)
	assert.Equal(t, []int{5, 3, 1}, r.Priorities("work"))
}

func TestDispatch_TiesRunInRegistrationOrder(t *testing.T) {
	r := NewRegistry[topic, int]()
	var calls []string

	r.Register("break", 2, recorder(&calls, "first"))
	r.Register("break", 2, recorder(&calls, "second"))
	r.Register("break", 4, recorder(&calls, "high"))
	r.Register("break", 2, recorder(&calls, "third"))

	require.NoError(t, r.Dispatch("break", 0))
	assert.Equal(t, []string{"high", "first", "second", "third"}, calls)
}

func TestDispatch_UnknownKeyIsNoop(t *testing.T) {
	r := NewRegistry[topic, int]()
	assert.NoError(t, r.Dispatch("nothing", 0))
	assert.Equal(t, 0, r.Len("nothing"))
}

func TestDispatch_PassesContext(t *testing.T) {
	r := NewRegistry[topic, int]()
	var got int
	r.Register("work", 1, func(v int) error {
		got = v
		return nil
	})

	require.NoError(t, r.Dispatch("work", 42))
	assert.Equal(t, 42, got)
}

func TestDispatch_StopsOnFirstError(t *testing.T) {
	r := NewRegistry[topic, int]()
	var calls []string
	boom := errors.New("boom")

	r.Register("work", 5, recorder(&calls, "p5"))
	r.Register("work", 4, func(int) error { return boom })
	r.Register("work", 1, recorder(&calls, "p1"))

	err := r.Dispatch("work", 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"p5"}, calls)
}

func TestUnregister_RemovesOnlyThatRegistration(t *testing.T) {
	r := NewRegistry[topic, int]()
	var calls []string
	cb := recorder(&calls, "c")

	h := r.Register("break", 2, cb)
	r.Register("break", 2, cb)

	require.NoError(t, r.Unregister(h))
	require.NoError(t, r.Dispatch("break", 0))
	assert.Equal(t, []string{"c"}, calls)
	assert.Equal(t, 1, r.Len("break"))
}

func TestUnregister_ThenDispatchDoesNotInvoke(t *testing.T) {
	r := NewRegistry[topic, int]()
	called := false

	h := r.Register("break", 2, func(int) error {
		called = true
		return nil
	})
	require.NoError(t, r.Unregister(h))

	require.NoError(t, r.Dispatch("break", 0))
	assert.False(t, called)
	assert.Equal(t, 0, r.Len("break"))
}

func TestUnregister_NotFound(t *testing.T) {
	r := NewRegistry[topic, int]()

	err := r.Unregister(Handle{})
	assert.ErrorIs(t, err, domain.ErrHandleNotFound)

	h := r.Register("work", 1, func(int) error { return nil })
	require.NoError(t, r.Unregister(h))
	assert.ErrorIs(t, r.Unregister(h), domain.ErrHandleNotFound)
}

func TestHandles_AreDistinct(t *testing.T) {
	r := NewRegistry[topic, int]()
	fn := func(int) error { return nil }

	h1 := r.Register("work", 1, fn)
	h2 := r.Register("work", 1, fn)

	assert.NotEqual(t, h1, h2)
	assert.False(t, h1.IsZero())
	assert.True(t, Handle{}.IsZero())
}

func TestDispatch_MutationDuringDispatchDoesNotCorrupt(t *testing.T) {
	r := NewRegistry[topic, int]()
	var calls []string
	var self Handle

	self = r.Register("work", 5, func(int) error {
		calls = append(calls, "once")
		return r.Unregister(self)
	})
	r.Register("work", 1, recorder(&calls, "after"))

	require.NoError(t, r.Dispatch("work", 0))
	require.NoError(t, r.Dispatch("work", 0))
	assert.Equal(t, []string{"once", "after", "after"}, calls)
}
