package store

import (
	"sync"
	"time"
)

// Latest holds the most recent value produced by a background refresher, e.g. the dashboard summary.
type Latest[T any] struct {
	mu      sync.RWMutex
	value   T
	updated time.Time
	set     bool
}

// NewLatest constructs an empty holder.
func NewLatest[T any]() *Latest[T] {
	return &Latest[T]{}
}

// Set replaces the held value.
func (s *Latest[T]) Set(value T, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.updated = at
	s.set = true
}

// Get returns the held value and when it was stored; ok is false before the first Set.
func (s *Latest[T]) Get() (value T, updated time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.updated, s.set
}
