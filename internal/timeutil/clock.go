// Package timeutil provides the clock abstraction used by services that
// depend on the current time (subscription expiry, registration timestamps,
// the tournament countdown). Injecting the clock keeps expiry-boundary
// behavior testable to the millisecond.
package timeutil

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant. Intended for tests.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time { return c.Instant }
