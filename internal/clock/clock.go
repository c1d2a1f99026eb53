// Package clock provides the wall-clock abstraction used by the tracker core.
// Production code uses the system clock; tests use a manually advanced clock
// so timing semantics can be exercised deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current wall-clock time. Calendar-day boundaries are
// derived from the returned time's location.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by time.Now, optionally pinned to a location.
type System struct {
	loc *time.Location
}

// NewSystem creates a system clock that reports times in the given location.
// A nil location means the process-local timezone.
func NewSystem(loc *time.Location) *System {
	return &System{loc: loc}
}

// Now returns the current time.
func (c *System) Now() time.Time {
	if c.loc != nil {
		return time.Now().In(c.loc)
	}
	return time.Now()
}

// Manual is a Clock that only moves when told to. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual creates a manual clock starting at the given instant.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the clock's current instant.
func (c *Manual) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Manual) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set moves the clock to an absolute instant.
func (c *Manual) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
