// Package clock lets time-dependent code (ETA, live location, tracking job) take "now" as a
// dependency.
package clock

import "time"

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time {
	return f()
}

// NewSystem returns the wall clock in UTC.
func NewSystem() Clock {
	return Func(func() time.Time { return time.Now().UTC() })
}

type fixed struct {
	now time.Time
}

// NewFixed always reports t, converted to UTC.
func NewFixed(t time.Time) Clock {
	return fixed{now: t.UTC()}
}

func (f fixed) Now() time.Time {
	return f.now
}
