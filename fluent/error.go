package fluent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CatchError runs an action that is expected to fail and returns what it failed with. A panic
// counts as a failure and is returned as a *PanicError. If the action completes normally, thrown
// is nil and err is ErrExpectedFailureButSucceeded.
func CatchError(action func() error) (thrown error, err error) {
	defer func() {
		if r := recover(); r != nil {
			thrown, err = &PanicError{Value: r}, nil
		}
	}()
	if thrown = action(); thrown == nil {
		return nil, ErrExpectedFailureButSucceeded
	}
	return thrown, nil
}

// ErrorAssert is an assertion chain for an error subject.
type ErrorAssert struct {
	Chain
	actual error
}

// Error starts an assertion chain for an error value.
func Error(t TestingT, actual error) *ErrorAssert {
	return &ErrorAssert{Chain: newChain(t, actual), actual: actual}
}

// ThatThrownBy runs the action with CatchError and starts a chain for the error it failed with.
// If the action did not fail, the chain is already failed, with ErrExpectedFailureButSucceeded
// as the cause.
func ThatThrownBy(t TestingT, action func() error) *ErrorAssert {
	thrown, err := CatchError(action)
	a := Error(t, thrown)
	a.evaluateErr("fails", "an error", func() (bool, error) {
		return err == nil, err
	})
	return a
}

// IsNotNil passes if there is an error.
func (a *ErrorAssert) IsNotNil() *ErrorAssert {
	a.evaluate("is not nil", "an error", func() bool { return a.actual != nil })
	return a
}

// IsInstanceOf passes if the error, or any error it wraps, can be assigned to target. As with
// errors.As, target must be a non-nil pointer to an error type or interface, and it is set to the
// matching error.
func (a *ErrorAssert) IsInstanceOf(target interface{}) *ErrorAssert {
	kind := strings.TrimPrefix(fmt.Sprintf("%T", target), "*")
	a.evaluate("is an instance of "+kind, kind, func() bool {
		return a.actual != nil && errors.As(a.actual, target)
	})
	return a
}

// Is passes if errors.Is(actual, target).
func (a *ErrorAssert) Is(target error) *ErrorAssert {
	a.evaluate("is "+describe(target), describe(target), func() bool {
		return errors.Is(a.actual, target)
	})
	return a
}

func (a *ErrorAssert) HasMessage(message string) *ErrorAssert {
	a.evaluate("has message "+strconv.Quote(message), strconv.Quote(message), func() bool {
		return a.actual != nil && a.actual.Error() == message
	})
	return a
}

func (a *ErrorAssert) HasMessageContaining(substring string) *ErrorAssert {
	a.evaluate("has message containing "+strconv.Quote(substring), strconv.Quote(substring), func() bool {
		return a.actual != nil && strings.Contains(a.actual.Error(), substring)
	})
	return a
}

func (a *ErrorAssert) Satisfies(description string, condition func(error) bool) *ErrorAssert {
	a.evaluate(description, "", func() bool { return condition(a.actual) })
	return a
}
