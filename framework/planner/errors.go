package planner

import (
	"fmt"
	"time"
)

// DuplicateOrderKeyError is returned by Plan when two cases in a suite have the same order key.
// No plan is produced in that case.
type DuplicateOrderKeyError struct {
	Key    int
	First  string
	Second string
}

func (e *DuplicateOrderKeyError) Error() string {
	return fmt.Sprintf("duplicate order key %d: used by both %q and %q", e.Key, e.First, e.Second)
}

// TimeoutExceededError is recorded for a case whose body did not finish within its time bound.
type TimeoutExceededError struct {
	Case    string
	Elapsed time.Duration
	Bound   time.Duration
}

func (e *TimeoutExceededError) Error() string {
	return fmt.Sprintf("%q did not finish within %s (abandoned after %s)",
		e.Case, e.Bound, e.Elapsed.Round(time.Millisecond))
}
