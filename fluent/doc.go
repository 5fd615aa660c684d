// Package fluent provides chained assertions on strings, numbers, times, errors and slices.
//
// A chain is started with a constructor such as String or Slice and extended one step at a time:
//
//	err := fluent.String(t, actual).
//		IsNotEmpty().
//		Contains("Hello").
//		EndsWith("d").
//		Done()
//
// Each step is checked as soon as it is added. The first step that fails puts the chain into
// the Failed state, records an *AssertionFailedError, and reports it once through t.Errorf if t
// is not nil. Steps added after that are accepted but never evaluated. Done closes a chain that
// has not failed, moving it to Passed, and returns the recorded failure if there was one; Err
// returns the same thing without closing the chain. Both Failed and Passed are final: steps
// added to a closed chain are not evaluated either.
//
// Passing a nil TestingT makes failures purely value-based, which is how test case bodies that
// return an error use this package:
//
//	func() error {
//		return fluent.Number(nil, math.Pi).IsPositive().IsLessThan(4).Done()
//	}
//
// Every step gives the same result each time it is evaluated against the same subject, except
// TimeAssert.IsBeforeNow, which depends on the clock.
package fluent
