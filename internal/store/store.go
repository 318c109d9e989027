// Package store implements the observable containers that cache the
// last-known backend state. A Store holds one value, notifies
// subscribers on every mutation, and supports derived read-only views
// that stay consistent with their source without manual recomputation.
package store

import "sync"

// Store is a minimal publish-subscribe container. Mutations are
// serialized by the mutex; listeners are invoked after the swap with
// the value they were notified for, outside the lock, so a listener
// may freely read the store again. Delivery to each listener is
// ordered by the mutation version, so a listener never sees an older
// value after a newer one.
type Store[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
	nextID  int
	subs    map[int]*subscriber[T]
}

// subscriber tracks the newest version already delivered so stale
// deliveries can be dropped.
type subscriber[T any] struct {
	mu   sync.Mutex
	seen uint64
	fn   func(T)
}

func (sub *subscriber[T]) deliver(version uint64, value T) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if version < sub.seen {
		return
	}
	sub.seen = version
	sub.fn(value)
}

// New builds a store seeded with the initial value.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  map[int]*subscriber[T]{},
	}
}

// Get returns the current value synchronously. This is the direct peek
// accessor: no subscription is created, so there is nothing to leak.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and notifies every subscriber.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	s.version++
	version := s.version
	listeners := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.deliver(version, value)
	}
}

// Update applies fn to the current value and notifies every subscriber.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	value := s.value
	s.version++
	version := s.version
	listeners := s.snapshotSubs()
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.deliver(version, value)
	}
}

// Subscribe registers a listener, invokes it immediately with the
// current value, and returns its unsubscribe function. When a
// mutation races the registration the initial delivery is dropped in
// favor of the newer one.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	sub := &subscriber[T]{fn: fn}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = sub
	value := s.value
	version := s.version
	s.mu.Unlock()

	sub.deliver(version, value)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store[T]) snapshotSubs() []*subscriber[T] {
	listeners := make([]*subscriber[T], 0, len(s.subs))
	for _, sub := range s.subs {
		listeners = append(listeners, sub)
	}
	return listeners
}

// Derived builds a read-only store that recomputes project on every
// upstream emission and forwards the result to its own subscribers.
// The derived store is permanently coupled to its source; it lives as
// long as the source does.
func Derived[T, U any](source *Store[T], project func(T) U) *Store[U] {
	derived := New(project(source.Get()))
	source.Subscribe(func(value T) {
		derived.Set(project(value))
	})
	return derived
}
