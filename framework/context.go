package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T. It implements the same Errorf/FailNow pair that the
// testify assert and require packages expect, so those can be used against it directly.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	timedOut    bool
	skipped     bool
	skipReason  string
	errors      []error
	lock        sync.Mutex
}

// Run creates a root context and runs the action in it. Only subtests started with Context.Run
// produce entries in the returned Results.
func Run(
	filter func(TestID) bool,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.isSkipped() {
				return
			}
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.Errors()) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			c.lock.Lock()
			c.failed = true
			if addError != nil {
				c.errors = append(c.errors, addError)
			}
			c.lock.Unlock()
			if addError != nil {
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
//
// If the environment's filter rejects the subtest's ID, it is reported as skipped without
// running the action.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		reason := "excluded by filter parameters"
		c.env.record(TestResult{TestID: id, Outcome: Skipped, SkipReason: reason})
		c.env.testLogger.TestSkipped(id, reason)
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	started := time.Now()
	c1.run(action)
	result := c1.result(time.Since(started))
	c.env.record(result)

	if result.Outcome == Skipped {
		c.env.testLogger.TestSkipped(id, result.SkipReason)
	} else {
		c.env.testLogger.TestFinished(id, result.Outcome, c1.debugLogger.Output())
	}
}

// Group runs an action whose subtests are named under the group's ID, without reporting the
// group as a test of its own. The group only appears in Results if it fails by itself, for
// instance by panicking outside of any subtest. Filters are applied to the subtests, not to the
// group.
func (c *Context) Group(name string, action func(*Context)) {
	id := c.id.Plus(name)
	g := &Context{
		id:  id,
		env: c.env,
	}
	started := time.Now()
	g.run(action)
	if g.Failed() {
		result := g.result(time.Since(started))
		c.env.record(result)
		c.env.testLogger.TestFinished(id, result.Outcome, g.debugLogger.Output())
	}
}

func (c *Context) result(elapsed time.Duration) TestResult {
	c.lock.Lock()
	defer c.lock.Unlock()
	r := TestResult{
		TestID:  c.id,
		Errors:  append([]error(nil), c.errors...),
		Elapsed: elapsed,
	}
	switch {
	case c.skipped:
		r.Outcome = Skipped
		r.SkipReason = c.skipReason
	case c.timedOut:
		r.Outcome = TimedOut
	case c.failed:
		r.Outcome = Failed
	default:
		r.Outcome = Passed
	}
	return r
}

func (e *environment) record(r TestResult) {
	e.results.Tests = append(e.results.Tests, r)
	if r.Outcome == Failed || r.Outcome == TimedOut {
		e.results.Failures = append(e.results.Failures, r)
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.Fail(fmt.Errorf(format, args...))
}

// Fail records an error and marks the test as failed, without exiting.
func (c *Context) Fail(err error) {
	c.lock.Lock()
	c.failed = true
	c.errors = append(c.errors, err)
	c.lock.Unlock()
	c.env.testLogger.TestError(c.id, err)
}

// TimeOut records that the test exceeded its time bound. The test is reported as timed out rather
// than failed. It does not cause an immediate exit.
func (c *Context) TimeOut(err error) {
	c.lock.Lock()
	c.timedOut = true
	c.errors = append(c.errors, err)
	c.lock.Unlock()
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	c.lock.Lock()
	c.failed = true
	c.lock.Unlock()
	panic(c)
}

func (c *Context) Failed() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.failed || c.timedOut
}

func (c *Context) Errors() []error {
	c.lock.Lock()
	defer c.lock.Unlock()
	return append([]error(nil), c.errors...)
}

func (c *Context) Skip() {
	c.lock.Lock()
	c.skipped = true
	c.lock.Unlock()
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.lock.Lock()
	c.skipReason = reason
	c.lock.Unlock()
	c.Skip()
}

func (c *Context) isSkipped() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.skipped
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}
