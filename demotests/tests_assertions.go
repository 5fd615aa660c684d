package demotests

import (
	"math"
	"strings"
	"time"

	"github.com/launchdarkly/fluent-test-harness/fluent"
	"github.com/launchdarkly/fluent-test-harness/framework/planner"
)

// InvalidArgumentError is the error raised by the exception example.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string { return e.Message }

// AssertionCases has one case per family of fluent assertions. Each body builds a chain and
// returns its result from Done, so a failing step fails the case.
func AssertionCases() []planner.TestCase {
	return []planner.TestCase{
		planner.NewTestCase("string validation", doStringValidation),
		planner.NewTestCase("number validation", doNumberValidation),
		planner.NewTestCase("date-time validation", doDateTimeValidation),
		planner.NewTestCase("exception validation", doExceptionValidation),
		planner.NewTestCase("filtering assertions", doFilteringAssertions),
		planner.NewTestCase("property validation", doPropertyValidation),
	}
}

func doStringValidation() error {
	expected := "Hello World"
	actual := strings.Clone(expected)

	return fluent.String(nil, actual).
		IsNotEmpty().
		IsNotBlank().
		Contains("Hello").
		DoesNotContain("hahaha").
		StartsWith("H").
		EndsWith("d").
		IsEqualTo("Hello World").
		Done()
}

func doNumberValidation() error {
	actual := math.Pi

	return fluent.Number(nil, actual).
		IsPositive().
		IsGreaterThan(3).
		IsLessThan(4).
		IsEqualTo(math.Pi).
		Done()
}

func doDateTimeValidation() error {
	theDay, err := fluent.ParseLocalDateTime("1999-04-09T16:42:00.000", time.Local)
	if err != nil {
		return err
	}

	return fluent.Time(nil, theDay).
		HasYear(1999).
		HasMonth(time.April).
		HasMonthValue(4).
		HasDayOfMonth(9).
		IsBetweenStrings("1999-04-08T00:00:00.000", "1999-04-10T00:00:00.000").
		IsBeforeNow().
		Done()
}

func doExceptionValidation() error {
	return fluent.ThatThrownBy(nil, func() error {
		return &InvalidArgumentError{Message: "invalid parameter supplied"}
	}).
		IsInstanceOf(new(*InvalidArgumentError)).
		HasMessageContaining("parameter").
		Done()
}

func doFilteringAssertions() error {
	members := SampleMembers()

	return fluent.Slice(nil, members).
		FilteredOn(func(m Member) bool { return m.Age() > 20 }).
		ContainsOnly(members[2], members[3]).
		Done()
}

func doPropertyValidation() error {
	members := SampleMembers()

	return fluent.Slice(nil, members).
		FilteredOnAttribute(MemberAttributes, "age", 20).
		ContainsOnly(members[0], members[4]).
		Done()
}
