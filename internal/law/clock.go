package law

import "time"

// Clock supplies the current calendar date.
//
// Laws never call time.Now directly; they read the date from the Clock
// they were constructed with. This keeps severity computation
// deterministic and lets tests pin the date (see testutil.FixedClock).
//
// Only the calendar date is meaningful. Implementations should not rely
// on time-of-day; callers only ever inspect year, month, and day.
type Clock interface {
	// Today returns the current calendar date.
	Today() time.Time
}

// SystemClock reads the wall clock. It is the production Clock; the
// returned date is truncated to midnight UTC so two calls on the same
// day compare equal.
//
// Thread-safety: SystemClock is stateless and safe for concurrent use.
type SystemClock struct{}

// Today returns today's date at midnight UTC.
func (SystemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
