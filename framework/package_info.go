// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 2. Every subtest ends with exactly one Outcome: passed, failed, skipped or timed out. The
// Results of a run hold one TestResult per subtest, and a run is OK only if nothing failed
// or timed out.
//
// 3. Progress is reported through a TestLogger, and each test can capture debug output
// that the logger may choose to show.
//
// Deciding which tests run, in what order and under what time bound is the job of the
// planner subpackage; domain-specific code supplies the test bodies.
package framework
