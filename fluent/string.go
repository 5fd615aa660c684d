package fluent

import (
	"strconv"
	"strings"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// StringAssert is an assertion chain for a string subject.
type StringAssert struct {
	Chain
	actual string
}

// String starts an assertion chain for a string.
func String(t TestingT, actual string) *StringAssert {
	return &StringAssert{Chain: newChain(t, actual), actual: actual}
}

func (a *StringAssert) IsEmpty() *StringAssert {
	a.evaluate("is empty", "", func() bool { return a.actual == "" })
	return a
}

func (a *StringAssert) IsNotEmpty() *StringAssert {
	a.evaluate("is not empty", "", func() bool { return a.actual != "" })
	return a
}

// IsNotBlank passes if the string contains anything other than white space.
func (a *StringAssert) IsNotBlank() *StringAssert {
	a.evaluate("is not blank", "", func() bool { return strings.TrimSpace(a.actual) != "" })
	return a
}

func (a *StringAssert) Contains(substring string) *StringAssert {
	a.evaluate("contains "+strconv.Quote(substring), strconv.Quote(substring),
		func() bool { return strings.Contains(a.actual, substring) })
	return a
}

func (a *StringAssert) DoesNotContain(substring string) *StringAssert {
	a.evaluate("does not contain "+strconv.Quote(substring), strconv.Quote(substring),
		func() bool { return !strings.Contains(a.actual, substring) })
	return a
}

func (a *StringAssert) StartsWith(prefix string) *StringAssert {
	a.evaluate("starts with "+strconv.Quote(prefix), strconv.Quote(prefix),
		func() bool { return strings.HasPrefix(a.actual, prefix) })
	return a
}

func (a *StringAssert) EndsWith(suffix string) *StringAssert {
	a.evaluate("ends with "+strconv.Quote(suffix), strconv.Quote(suffix),
		func() bool { return strings.HasSuffix(a.actual, suffix) })
	return a
}

func (a *StringAssert) IsEqualTo(expected string) *StringAssert {
	a.evaluate("is equal to "+strconv.Quote(expected), strconv.Quote(expected),
		func() bool { return assert.ObjectsAreEqual(expected, a.actual) })
	return a
}

// IsEqualToIgnoringCase compares using full Unicode case folding, so that for instance "Straße"
// and "STRASSE" are equal.
func (a *StringAssert) IsEqualToIgnoringCase(expected string) *StringAssert {
	a.evaluate("is equal to "+strconv.Quote(expected)+" ignoring case", strconv.Quote(expected),
		func() bool {
			fold := cases.Fold()
			return fold.String(a.actual) == fold.String(expected)
		})
	return a
}

// IsEqualToNormalizingUnicode compares the NFC forms of both strings. Text that was composed
// differently, such as precomposed and jamo-sequence Hangul, compares equal.
func (a *StringAssert) IsEqualToNormalizingUnicode(expected string) *StringAssert {
	a.evaluate("is equal to "+strconv.Quote(expected)+" after NFC normalization", strconv.Quote(expected),
		func() bool { return norm.NFC.String(a.actual) == norm.NFC.String(expected) })
	return a
}

// Satisfies checks a custom condition. The description is used in the failure message.
func (a *StringAssert) Satisfies(description string, condition func(string) bool) *StringAssert {
	a.evaluate(description, "", func() bool { return condition(a.actual) })
	return a
}
