package clock

import (
	"sync"
	"time"
)

// Clock abstracts time operations for testability.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Real is a Clock backed by the system clock.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }

// After waits for d on the system clock.
func (Real) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Mock is a Clock pinned to a settable instant. After fires immediately and
// advances the mock by the requested duration.
type Mock struct {
	mu sync.Mutex
	t  time.Time
}

// NewMock returns a Mock set to t.
func NewMock(t time.Time) *Mock {
	return &Mock{t: t}
}

// Now returns the mocked time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.t
}

// Set moves the mock to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	m.t = t
	m.mu.Unlock()
}

// Advance moves the mock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	m.t = m.t.Add(d)
	m.mu.Unlock()
}

// After advances the mock by d and returns an already-fired channel.
func (m *Mock) After(d time.Duration) <-chan time.Time {
	m.Advance(d)
	ch := make(chan time.Time, 1)
	ch <- m.Now()
	return ch
}
