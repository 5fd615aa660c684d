package fluent

import (
	"fmt"
	"strconv"
	"time"
)

var localDateTimeLayouts = []string{
	"2006-01-02T15:04:05", // fractional seconds are accepted after the seconds field
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseLocalDateTime parses an ISO-8601 date and time without a zone, such as
// "1999-04-09T16:42:00.000", in the given location. A nil location means time.Local.
func ParseLocalDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	var firstErr error
	for _, layout := range localDateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("not a local date-time: %w", firstErr)
}

// TimeAssert is an assertion chain for a time.Time subject. Date fields are read in the
// subject's own location.
type TimeAssert struct {
	Chain
	actual time.Time
	now    func() time.Time
}

// Time starts an assertion chain for a time.
func Time(t TestingT, actual time.Time) *TimeAssert {
	return &TimeAssert{Chain: newChain(t, actual), actual: actual, now: time.Now}
}

// WithClock replaces the source of the current time used by IsBeforeNow.
func (a *TimeAssert) WithClock(now func() time.Time) *TimeAssert {
	a.now = now
	return a
}

func (a *TimeAssert) HasYear(year int) *TimeAssert {
	a.evaluate("has year "+strconv.Itoa(year), strconv.Itoa(year),
		func() bool { return a.actual.Year() == year })
	return a
}

func (a *TimeAssert) HasMonth(month time.Month) *TimeAssert {
	a.evaluate("has month "+month.String(), month.String(),
		func() bool { return a.actual.Month() == month })
	return a
}

// HasMonthValue checks the month as a number from 1 to 12.
func (a *TimeAssert) HasMonthValue(month int) *TimeAssert {
	a.evaluate("has month value "+strconv.Itoa(month), strconv.Itoa(month),
		func() bool { return int(a.actual.Month()) == month })
	return a
}

func (a *TimeAssert) HasDayOfMonth(day int) *TimeAssert {
	a.evaluate("has day of month "+strconv.Itoa(day), strconv.Itoa(day),
		func() bool { return a.actual.Day() == day })
	return a
}

// IsBetween checks that start <= actual <= end.
func (a *TimeAssert) IsBetween(start, end time.Time) *TimeAssert {
	expected := fmt.Sprintf("[%s, %s]", describe(start), describe(end))
	a.evaluate("is between "+expected, expected, func() bool {
		return !a.actual.Before(start) && !a.actual.After(end)
	})
	return a
}

// IsBetweenStrings is like IsBetween, with bounds given as local date-times that are parsed
// in the subject's location. A bound that cannot be parsed fails the step.
func (a *TimeAssert) IsBetweenStrings(start, end string) *TimeAssert {
	expected := fmt.Sprintf("[%s, %s]", start, end)
	a.evaluateErr("is between "+expected, expected, func() (bool, error) {
		s, err := ParseLocalDateTime(start, a.actual.Location())
		if err != nil {
			return false, err
		}
		e, err := ParseLocalDateTime(end, a.actual.Location())
		if err != nil {
			return false, err
		}
		return !a.actual.Before(s) && !a.actual.After(e), nil
	})
	return a
}

func (a *TimeAssert) IsBefore(other time.Time) *TimeAssert {
	a.evaluate("is before "+describe(other), "< "+describe(other),
		func() bool { return a.actual.Before(other) })
	return a
}

func (a *TimeAssert) IsAfter(other time.Time) *TimeAssert {
	a.evaluate("is after "+describe(other), "> "+describe(other),
		func() bool { return a.actual.After(other) })
	return a
}

// IsBeforeNow compares the subject with the current time. The clock is read once when the step
// is evaluated, and not at all once the chain has failed or been closed. Unlike every other
// step, the result of this one depends on when it runs.
func (a *TimeAssert) IsBeforeNow() *TimeAssert {
	if a.State() != Open {
		return a
	}
	now := a.now()
	a.evaluate("is before now", "< "+describe(now), func() bool { return a.actual.Before(now) })
	return a
}

func (a *TimeAssert) Satisfies(description string, condition func(time.Time) bool) *TimeAssert {
	a.evaluate(description, "", func() bool { return condition(a.actual) })
	return a
}
