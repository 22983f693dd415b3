package engine

import "time"

// TimeProvider supplies the loop's clock. Frame deltas must be
// non-negative and non-decreasing, so implementations have to include
// Go's monotonic clock reading; wall-clock adjustments must not show up
// in elapsed time.
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic
// clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
