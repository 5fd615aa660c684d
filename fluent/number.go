package fluent

import (
	"fmt"
)

// Numeric is any integer or floating-point type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// NumberAssert is an assertion chain for a numeric subject. Comparisons are exact; a NaN subject
// fails every sign and ordering check.
type NumberAssert[N Numeric] struct {
	Chain
	actual N
}

// Number starts an assertion chain for a number.
func Number[N Numeric](t TestingT, actual N) *NumberAssert[N] {
	return &NumberAssert[N]{Chain: newChain(t, actual), actual: actual}
}

func (a *NumberAssert[N]) IsPositive() *NumberAssert[N] {
	a.evaluate("is positive", "> 0", func() bool { return a.actual > 0 })
	return a
}

func (a *NumberAssert[N]) IsNegative() *NumberAssert[N] {
	a.evaluate("is negative", "< 0", func() bool { return a.actual < 0 })
	return a
}

func (a *NumberAssert[N]) IsZero() *NumberAssert[N] {
	a.evaluate("is zero", "0", func() bool { return a.actual == 0 })
	return a
}

func (a *NumberAssert[N]) IsGreaterThan(other N) *NumberAssert[N] {
	a.evaluate(fmt.Sprintf("is greater than %v", other), fmt.Sprintf("> %v", other),
		func() bool { return a.actual > other })
	return a
}

func (a *NumberAssert[N]) IsLessThan(other N) *NumberAssert[N] {
	a.evaluate(fmt.Sprintf("is less than %v", other), fmt.Sprintf("< %v", other),
		func() bool { return a.actual < other })
	return a
}

// IsEqualTo checks for exact equality, with no tolerance for floating-point values.
func (a *NumberAssert[N]) IsEqualTo(expected N) *NumberAssert[N] {
	a.evaluate(fmt.Sprintf("is equal to %v", expected), fmt.Sprintf("%v", expected),
		func() bool { return a.actual == expected })
	return a
}

func (a *NumberAssert[N]) Satisfies(description string, condition func(N) bool) *NumberAssert[N] {
	a.evaluate(description, "", func() bool { return condition(a.actual) })
	return a
}
