// Package demotests contains the demonstration suites that the harness runs: a lifecycle suite
// showing ordering, skipping and time bounds, and an assertions suite exercising each family of
// fluent assertions.
//
// The suites are plain lists of planner.TestCase values. The planning and running machinery is in
// the lower-level framework and framework/planner packages.
package demotests
