// Package clock abstracts the ambient "now" so that stay-duration arithmetic
// is deterministic under test. Production code receives the system clock from
// the dependency graph; tests substitute a fixed clock.
package clock

import (
	"hotelier/shared/timezone"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return timezone.Now()
}

// NewSystem returns the wall clock in the application timezone.
func NewSystem() Clock {
	return systemClock{}
}

// Fixed is a Clock pinned to a single instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

// NewFixed returns a Clock that always reports the given instant.
func NewFixed(instant time.Time) Clock {
	return Fixed{Instant: instant}
}
