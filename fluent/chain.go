package fluent

import (
	"fmt"
	"strconv"
	"time"
)

// TestingT is the part of *testing.T that assertions report failures to. It has the same shape
// as assert.TestingT in testify, and *framework.Context satisfies it too.
type TestingT interface {
	Errorf(format string, args ...interface{})
}

// State is the evaluation state of an assertion chain.
type State int

const (
	// Open means no step has failed and the chain can take more steps.
	Open State = iota
	// Failed means a step failed. It is terminal: later steps are accepted but not evaluated.
	Failed
	// Passed means the chain was closed with Done and no step had failed. It is terminal too.
	Passed
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Failed:
		return "failed"
	case Passed:
		return "passed"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

type chainState struct {
	state State
	steps int
	err   *AssertionFailedError
}

// Chain is the evaluation state embedded in every assertion type. Each step is checked as soon
// as it is added; the first failing step is recorded and every step after it is skipped.
type Chain struct {
	t       TestingT
	subject interface{}
	shared  *chainState
}

func newChain(t TestingT, subject interface{}) Chain {
	return Chain{t: t, subject: subject, shared: &chainState{}}
}

// derive returns a chain bound to a new subject that shares this chain's state, so that a
// failure on either is a failure of both.
func (c Chain) derive(subject interface{}) Chain {
	return Chain{t: c.t, subject: subject, shared: c.shared}
}

// State returns the current state of the chain.
func (c *Chain) State() State {
	return c.shared.state
}

// Err returns the failure recorded by the chain, or nil if no step has failed.
func (c *Chain) Err() error {
	if c.shared.err == nil {
		return nil
	}
	return c.shared.err
}

// Done closes the chain. An open chain becomes Passed; a failed chain stays Failed. Steps added
// after Done are not evaluated. It returns the same value as Err, and can be called any number
// of times.
func (c *Chain) Done() error {
	if c.shared.state == Open {
		c.shared.state = Passed
	}
	return c.Err()
}

// evaluate runs one step. The test function is only called while the chain is Open.
func (c *Chain) evaluate(description, expected string, test func() bool) {
	if c.shared.state != Open {
		return
	}
	c.shared.steps++
	if !test() {
		c.fail(&AssertionFailedError{
			Step:        c.shared.steps,
			Description: description,
			Actual:      describe(c.subject),
			Expected:    expected,
		})
	}
}

// evaluateErr is like evaluate for steps that can fail for a reason other than a mismatch.
func (c *Chain) evaluateErr(description, expected string, test func() (bool, error)) {
	if c.shared.state != Open {
		return
	}
	c.shared.steps++
	ok, err := test()
	if err != nil || !ok {
		c.fail(&AssertionFailedError{
			Step:        c.shared.steps,
			Description: description,
			Actual:      describe(c.subject),
			Expected:    expected,
			Cause:       err,
		})
	}
}

func (c *Chain) fail(err *AssertionFailedError) {
	c.shared.state = Failed
	c.shared.err = err
	if c.t != nil {
		if h, ok := c.t.(interface{ Helper() }); ok {
			h.Helper()
		}
		c.t.Errorf("%s", err)
	}
}

const timeFormat = "2006-01-02T15:04:05.999999999Z07:00"

// describe renders a subject or expected value for failure messages.
func describe(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return strconv.Quote(x)
	case time.Time:
		return x.Format(timeFormat)
	case error:
		return fmt.Sprintf("%T(%q)", x, x.Error())
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
