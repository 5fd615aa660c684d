package demotests

import (
	"time"

	"github.com/launchdarkly/fluent-test-harness/framework/planner"
)

const (
	lifecycleTimeout = 1000 * time.Millisecond
	lifecycleSleep   = 1001 * time.Millisecond
)

// LifecycleCases shows the case metadata the planner understands. The ordered cases run first
// even though they are declared last; "ignored" is reported but never run; "timeout" sleeps
// just past its bound and so is always reported as timed out.
func LifecycleCases() []planner.TestCase {
	return []planner.TestCase{
		planner.NewTestCase("ignored", func() error { return nil },
			planner.Disabled("")),
		planner.NewTestCase("timeout", sleepFor(lifecycleSleep),
			planner.Timeout(lifecycleTimeout)),
		planner.NewTestCase("first", nil, planner.Order(1)),
		planner.NewTestCase("second", nil, planner.Order(2)),
		planner.NewTestCase("third", nil, planner.Order(3)),
	}
}

func sleepFor(d time.Duration) func() error {
	return func() error {
		time.Sleep(d)
		return nil
	}
}
