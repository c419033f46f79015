package report

import "time"

// Clock supplies the current instant. All window derivation receives time
// through this capability so reports are reproducible in tests; nothing in
// the aggregation path reads the wall clock directly.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock frozen at a single instant, for tests and replays.
type FixedClock struct {
	Instant time.Time
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}
