// Package cache holds a single time-keyed value that is refreshed on demand.
package cache

import (
	"context"
	"sync"
	"time"
)

// FetchFunc produces a fresh value for a Cell.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cell stores one value with the time it was fetched. The zero Cell is empty
// and ready to use. Concurrent refreshes are allowed and the last one to
// finish wins.
type Cell[T any] struct {
	mu        sync.RWMutex
	value     T
	fetchedAt time.Time
	ok        bool
}

// Get returns the stored value and when it was fetched. The boolean is false
// while the cell is empty.
func (c *Cell[T]) Get() (T, time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.fetchedAt, c.ok
}

// Set stores value as fetched at the given time.
func (c *Cell[T]) Set(value T, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
	c.fetchedAt = fetchedAt
	c.ok = true
}

// IsStale reports whether the cell is empty or older than ttl at now.
func (c *Cell[T]) IsStale(now time.Time, ttl time.Duration) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.ok || now.Sub(c.fetchedAt) >= ttl
}

// RefreshIfStale returns the stored value when it is younger than ttl.
// Otherwise it calls fetch and stores the result with now as its timestamp.
// A failed fetch leaves the previous value in place and returns the error.
// The lock is not held while fetch runs.
func (c *Cell[T]) RefreshIfStale(ctx context.Context, now time.Time, ttl time.Duration, fetch FetchFunc[T]) (T, error) {
	c.mu.RLock()
	if c.ok && now.Sub(c.fetchedAt) < ttl {
		v := c.value
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(v, now)
	return v, nil
}
