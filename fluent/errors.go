package fluent

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExpectedFailureButSucceeded means an action that was expected to fail completed normally.
// This is a mistake in the test rather than in the code under test.
var ErrExpectedFailureButSucceeded = errors.New("expected the action to fail, but it completed normally")

// AssertionFailedError describes the first failing step of an assertion chain.
type AssertionFailedError struct {
	// Step is the 1-based position of the failing step among the steps the chain evaluated.
	Step int
	// Description says what the step expected, for example `contains "Hello"`.
	Description string
	// Actual is a rendering of the subject.
	Actual string
	// Expected is a rendering of the expected value or range, if the step has one.
	Expected string
	// Cause is set when the step could not be evaluated, for instance because of an unknown
	// attribute name.
	Cause error
}

func (e *AssertionFailedError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed at step %d: %s\n", e.Step, e.Description)
	fmt.Fprintf(&buf, "  Actual:   %s", e.Actual)
	if e.Expected != "" {
		fmt.Fprintf(&buf, "\n  Expected: %s", e.Expected)
	}
	if e.Cause != nil {
		fmt.Fprintf(&buf, "\n  Cause:    %s", e.Cause)
	}
	return buf.String()
}

func (e *AssertionFailedError) Unwrap() error {
	return e.Cause
}

// UnknownAttributeError is the cause of a failure when a filter names an attribute that has no
// accessor.
type UnknownAttributeError struct {
	Name  string
	Known []string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q (known attributes: %s)", e.Name, strings.Join(e.Known, ", "))
}

// PanicError holds the value of a panic recovered by CatchError.
type PanicError struct {
	Value interface{}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
