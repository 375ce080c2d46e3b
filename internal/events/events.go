// Package events provides a small typed publish/subscribe helper used to
// notify observers of playback state changes
package events

import (
	"slices"
	"sync"
)

// Feed delivers values of type T to every subscribed callback.
type Feed[T any] struct {
	listeners map[uint64]func(T)
	last      *T
	mu        sync.RWMutex
	nextID    uint64
	replay    bool
}

// NewFeed returns an empty feed. When replay is true, new subscribers are
// immediately called with the most recently published value, if any.
func NewFeed[T any](replay bool) *Feed[T] {
	return &Feed[T]{
		listeners: make(map[uint64]func(T)),
		replay:    replay,
	}
}

// Subscribe registers fn and returns a function that removes it again.
func (f *Feed[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	if fn == nil {
		panic("events: nil subscriber")
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn

	var last *T

	if f.replay && f.last != nil {
		v := *f.last
		last = &v
	}
	f.mu.Unlock()

	// called outside the lock so fn may subscribe or unsubscribe
	if last != nil {
		fn(*last)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.listeners, id)
			f.mu.Unlock()
		})
	}
}

// Publish calls every subscriber with v, in subscription order.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	if f.replay {
		f.last = &v
	}

	ids := make([]uint64, 0, len(f.listeners))
	for id := range f.listeners {
		ids = append(ids, id)
	}

	listeners := make([]func(T), 0, len(ids))

	slices.Sort(ids)

	for _, id := range ids {
		listeners = append(listeners, f.listeners[id])
	}
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Len returns the number of subscribers.
func (f *Feed[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.listeners)
}
