package planner

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// TestCase describes one test to be planned and executed.
//
// It is a plain value: Plan copies the cases it is given, so changing a TestCase after planning
// has no effect on the plan.
type TestCase struct {
	// Name identifies the case within its suite.
	Name string

	// Order is an optional explicit order key. Cases with a key run before cases without one,
	// in ascending key order. Keys must be unique within a suite.
	Order ldvalue.OptionalInt

	// Skip causes the case to be reported as skipped without running it.
	Skip bool

	// SkipReason is reported along with a skipped case.
	SkipReason string

	// Timeout is the longest the body may run. Zero means no bound.
	Timeout time.Duration

	// Body is the test itself. A non-nil error or a panic fails the case. A nil Body passes.
	Body func() error
}

// Option sets optional metadata on a TestCase created by NewTestCase.
type Option func(*TestCase)

// NewTestCase creates a TestCase with the given name and body.
func NewTestCase(name string, body func() error, options ...Option) TestCase {
	tc := TestCase{Name: name, Body: body}
	for _, o := range options {
		o(&tc)
	}
	return tc
}

// Order gives the case an explicit order key.
func Order(key int) Option {
	return func(tc *TestCase) {
		tc.Order = ldvalue.NewOptionalInt(key)
	}
}

// Disabled marks the case as skipped.
func Disabled(reason string) Option {
	return func(tc *TestCase) {
		tc.Skip = true
		tc.SkipReason = reason
	}
}

// Timeout bounds how long the case body may run.
func Timeout(d time.Duration) Option {
	return func(tc *TestCase) {
		tc.Timeout = d
	}
}

// IsOrdered is true if the case has an explicit order key.
func (tc TestCase) IsOrdered() bool {
	return tc.Order.IsDefined()
}
