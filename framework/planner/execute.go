package planner

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/launchdarkly/fluent-test-harness/framework"
)

// Runner holds the settings for executing plans.
type Runner struct {
	// Suite, if set, is used as the first component of every case's TestID.
	Suite string

	// Filter can exclude cases by TestID. Excluded cases are reported as skipped.
	Filter framework.Filter

	// TestLogger receives progress notifications. It may be nil.
	TestLogger framework.TestLogger
}

// Execute runs a plan with the given runner settings. It is shorthand for runner.Execute(plan).
func Execute(plan ExecutionPlan, runner Runner) framework.Results {
	return runner.Execute(plan)
}

// Execute runs every case in the plan, one at a time on the calling goroutine, and returns one
// result per case. A case that fails or times out does not prevent later cases from running.
func (r Runner) Execute(plan ExecutionPlan) framework.Results {
	return framework.Run(r.Filter, r.TestLogger, func(c *framework.Context) {
		if r.Suite == "" {
			plan.RunIn(c)
		} else {
			c.Group(r.Suite, plan.RunIn)
		}
	})
}

// RunIn runs each case of the plan as a subtest of c. This allows several plans to share one
// framework.Run and one set of Results.
func (p ExecutionPlan) RunIn(c *framework.Context) {
	for _, tc := range p.cases {
		c.Run(tc.Name, tc.run)
	}
}

func (tc TestCase) run(c *framework.Context) {
	if tc.Skip {
		c.SkipWithReason(tc.SkipReason)
	}
	if tc.Body == nil {
		c.Debug("case has no body")
		return
	}
	if tc.Timeout <= 0 {
		if err := tc.Body(); err != nil {
			c.Fail(err)
		}
		return
	}

	c.Debug("running with time bound %s", tc.Timeout)
	elapsed, completed, err := runWithDeadline(tc.Body, tc.Timeout)
	if !completed {
		c.Debug("abandoned body after %s; it may still be running", elapsed)
		c.TimeOut(&TimeoutExceededError{Case: tc.Name, Elapsed: elapsed, Bound: tc.Timeout})
		return
	}
	if err != nil {
		c.Fail(err)
	}
}

// errBodyExited is the failure recorded for a body that ended its goroutine without returning,
// for instance through runtime.Goexit.
var errBodyExited = errors.New("test body exited without returning")

// runWithDeadline runs body on its own goroutine and waits up to bound for it to finish. If the
// deadline passes first, the goroutine is left to finish on its own; there is no way to stop it.
// A result that arrives at the same moment as the deadline counts as completed.
func runWithDeadline(body func() error, bound time.Duration) (elapsed time.Duration, completed bool, err error) {
	done := make(chan error, 1) // buffered so that an abandoned body can still exit
	started := time.Now()
	go func() {
		returned := false
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			} else if !returned {
				done <- errBodyExited
			}
		}()
		err := body()
		returned = true
		done <- err
	}()

	deadline := time.NewTimer(bound)
	defer deadline.Stop()
	select {
	case err = <-done:
		return time.Since(started), true, err
	case <-deadline.C:
		select {
		case err = <-done:
			return time.Since(started), true, err
		default:
			return time.Since(started), false, nil
		}
	}
}
