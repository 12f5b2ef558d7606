// Package hooks provides a priority ordered callback registry keyed by typed topics.
//
// Callbacks registered under the same topic run from the highest to the lowest
// priority. Callbacks sharing a priority run in registration order. Every
// registration returns a Handle, which is the only way to remove it again.
//
// A Registry is not safe for concurrent use. Callers serialize registration and
// dispatch onto one goroutine. A callback must not register or unregister
// entries for the topic currently being dispatched.
package hooks

import (
	"fmt"
	"slices"

	"github.com/breakwise/breakwise/internal/domain"
)

// Callback is a unit of behavior invoked with the dispatch context
type Callback[C any] func(C) error

// Handle identifies one registration. The zero Handle is never issued.
type Handle struct {
	id uint64
}

// IsZero reports whether h was never issued by a registry
func (h Handle) IsZero() bool {
	return h.id == 0
}

type entry[C any] struct {
	fn       Callback[C]
	handle   Handle
	priority int
}

// Registry maps topics to priority ordered callbacks
type Registry[K comparable, C any] struct {
	entries map[K][]entry[C]
	keys    map[Handle]K
	nextID  uint64
}

// NewRegistry creates an empty registry
func NewRegistry[K comparable, C any]() *Registry[K, C] {
	return &Registry[K, C]{
		entries: make(map[K][]entry[C]),
		keys:    make(map[Handle]K),
	}
}

// Register adds fn under key with the given priority
func (r *Registry[K, C]) Register(key K, priority int, fn Callback[C]) Handle {
	r.nextID++
	h := Handle{id: r.nextID}

	list := r.entries[key]
	// Entries are kept in dispatch order: priority descending, then handle ascending.
	i := slices.IndexFunc(list, func(e entry[C]) bool {
		return e.priority < priority
	})
	if i < 0 {
		i = len(list)
	}
	r.entries[key] = slices.Insert(list, i, entry[C]{fn: fn, handle: h, priority: priority})
	r.keys[h] = key

	return h
}

// Unregister removes the registration identified by h
func (r *Registry[K, C]) Unregister(h Handle) error {
	key, ok := r.keys[h]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrHandleNotFound, h.id)
	}
	delete(r.keys, h)

	list := r.entries[key]
	i := slices.IndexFunc(list, func(e entry[C]) bool { return e.handle == h })
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(r.entries, key)
	} else {
		r.entries[key] = list
	}
	return nil
}

// Dispatch invokes the callbacks of key, highest priority first.
// Dispatching a key without callbacks is a no-op. The first callback error
// stops the dispatch and is returned.
func (r *Registry[K, C]) Dispatch(key K, ctx C) error {
	list := slices.Clone(r.entries[key])
	for _, e := range list {
		if err := e.fn(ctx); err != nil {
			return fmt.Errorf("%v hook with priority %d failed: %w", key, e.priority, err)
		}
	}
	return nil
}

// Len returns the number of callbacks registered under key
func (r *Registry[K, C]) Len(key K) int {
	return len(r.entries[key])
}

// Priorities returns the dispatch order of key as priorities, for inspection
func (r *Registry[K, C]) Priorities(key K) []int {
	list := r.entries[key]
	out := make([]int, len(list))
	for i, e := range list {
		out[i] = e.priority
	}
	return out
}
