package planner

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outcomes(results framework.Results) map[string]framework.Outcome {
	ret := make(map[string]framework.Outcome)
	for _, r := range results.Tests {
		ret[r.TestID.String()] = r.Outcome
	}
	return ret
}

func TestExecuteRunsCasesInPlanOrder(t *testing.T) {
	var ran []string
	record := func(name string) func() error {
		return func() error {
			ran = append(ran, name)
			return nil
		}
	}
	p := MustPlan([]TestCase{
		NewTestCase("unordered", record("unordered")),
		NewTestCase("second", record("second"), Order(2)),
		NewTestCase("first", record("first"), Order(1)),
	})

	results := Execute(p, Runner{})

	assert.Equal(t, []string{"first", "second", "unordered"}, ran)
	assert.True(t, results.OK())
	require.Len(t, results.Tests, 3)
	for i, name := range []string{"first", "second", "unordered"} {
		assert.Equal(t, name, results.Tests[i].TestID.String())
	}
}

func TestEmptyPlanSucceeds(t *testing.T) {
	results := Execute(MustPlan(nil), Runner{Suite: "empty"})
	assert.True(t, results.OK())
	assert.Empty(t, results.Tests)
}

func TestSkippedCaseIsNeverRun(t *testing.T) {
	ran := false
	p := MustPlan([]TestCase{
		NewTestCase("ignored", func() error {
			ran = true
			return nil
		}, Disabled("disabled"), Timeout(time.Nanosecond)),
	})

	results := Execute(p, Runner{})

	assert.False(t, ran)
	require.Len(t, results.Tests, 1)
	assert.Equal(t, framework.Skipped, results.Tests[0].Outcome)
	assert.Equal(t, "disabled", results.Tests[0].SkipReason)
	assert.Empty(t, results.Tests[0].Errors)
	assert.True(t, results.OK())
}

func TestFailureIsIsolated(t *testing.T) {
	p := MustPlan([]TestCase{
		NewTestCase("fails", func() error { return errors.New("nope") }),
		NewTestCase("panics", func() error { panic("boom") }),
		NewTestCase("passes", func() error { return nil }),
	})

	results := Execute(p, Runner{Suite: "s"})

	assert.Equal(t, map[string]framework.Outcome{
		"s/fails":  framework.Failed,
		"s/panics": framework.Failed,
		"s/passes": framework.Passed,
	}, outcomes(results))
	assert.False(t, results.OK())
	assert.Equal(t, framework.Summary{Passed: 1, Failed: 2}, results.Summary())
}

func TestCaseOverItsBoundTimesOut(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	var after atomic.Bool
	p := MustPlan([]TestCase{
		NewTestCase("slow", func() error {
			<-release
			return nil
		}, Timeout(50*time.Millisecond)),
		NewTestCase("after", func() error {
			after.Store(true)
			return nil
		}),
	})

	results := Execute(p, Runner{})

	assert.True(t, after.Load(), "a timeout must not stop later cases")
	slow, ok := results.Find(framework.NewTestID("slow"))
	require.True(t, ok)
	assert.Equal(t, framework.TimedOut, slow.Outcome)
	require.Len(t, slow.Errors, 1)
	var timeout *TimeoutExceededError
	require.True(t, errors.As(slow.Errors[0], &timeout))
	assert.Equal(t, "slow", timeout.Case)
	assert.Equal(t, 50*time.Millisecond, timeout.Bound)
	assert.GreaterOrEqual(t, timeout.Elapsed, timeout.Bound)
	assert.False(t, results.OK())
	assert.Len(t, results.Failures, 1)
}

func TestCaseUnderItsBoundCompletesNormally(t *testing.T) {
	p := MustPlan([]TestCase{
		NewTestCase("quick pass", func() error { return nil }, Timeout(time.Second)),
		NewTestCase("quick fail", func() error { return errors.New("bad") }, Timeout(time.Second)),
		NewTestCase("quick panic", func() error { panic("bad") }, Timeout(time.Second)),
	})

	results := Execute(p, Runner{})

	assert.Equal(t, map[string]framework.Outcome{
		"quick pass":  framework.Passed,
		"quick fail":  framework.Failed,
		"quick panic": framework.Failed,
	}, outcomes(results))
}

func TestRunWithDeadlinePrefersCompletedResult(t *testing.T) {
	elapsed, completed, err := runWithDeadline(func() error {
		return errors.New("done")
	}, time.Second)
	assert.True(t, completed)
	assert.EqualError(t, err, "done")
	assert.Less(t, elapsed, time.Second)
}

func TestBodyThatExitsWithoutReturningFailsImmediately(t *testing.T) {
	p := MustPlan([]TestCase{
		NewTestCase("exits", func() error {
			runtime.Goexit()
			return nil
		}, Timeout(10*time.Second)),
	})

	started := time.Now()
	results := Execute(p, Runner{})

	assert.Less(t, time.Since(started), 10*time.Second)
	require.Len(t, results.Tests, 1)
	assert.Equal(t, framework.Failed, results.Tests[0].Outcome)
	require.Len(t, results.Tests[0].Errors, 1)
	assert.Equal(t, errBodyExited, results.Tests[0].Errors[0])
}

func TestRunnerFilterSkipsCases(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("/keep$"))
	ran := false
	p := MustPlan([]TestCase{
		NewTestCase("keep", nil),
		NewTestCase("drop", func() error {
			ran = true
			return nil
		}),
	})

	results := Runner{Suite: "s", Filter: filters.AsFilter}.Execute(p)

	assert.False(t, ran)
	assert.Equal(t, map[string]framework.Outcome{
		"s/keep": framework.Passed,
		"s/drop": framework.Skipped,
	}, outcomes(results))
}

func TestSeveralPlansShareResults(t *testing.T) {
	p1 := MustPlan([]TestCase{NewTestCase("a", nil)})
	p2 := MustPlan([]TestCase{NewTestCase("b", nil)})

	results := framework.Run(nil, nil, func(c *framework.Context) {
		c.Group("one", p1.RunIn)
		c.Group("two", p2.RunIn)
	})

	assert.Equal(t, map[string]framework.Outcome{
		"one/a": framework.Passed,
		"two/b": framework.Passed,
	}, outcomes(results))
}
