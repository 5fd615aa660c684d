package fluent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringChainExample(t *testing.T) {
	expected := "Hello World"
	actual := string([]byte(expected))

	String(t, actual).
		IsNotEmpty().
		IsNotBlank().
		Contains("Hello").
		DoesNotContain("hahaha").
		StartsWith("H").
		EndsWith("d").
		IsEqualTo("Hello World")
}

func TestStringStepFailures(t *testing.T) {
	for _, tc := range []struct {
		name    string
		subject string
		apply   func(*StringAssert)
	}{
		{"not empty", "", func(a *StringAssert) { a.IsNotEmpty() }},
		{"not blank", " \t ", func(a *StringAssert) { a.IsNotBlank() }},
		{"contains", "abc", func(a *StringAssert) { a.Contains("q") }},
		{"does not contain", "a b", func(a *StringAssert) { a.DoesNotContain(" ") }},
		{"starts with", "abc", func(a *StringAssert) { a.StartsWith("x") }},
		{"ends with", "abc", func(a *StringAssert) { a.EndsWith("x") }},
		{"equal", "abc", func(a *StringAssert) { a.IsEqualTo("abd") }},
		{"empty", "abc", func(a *StringAssert) { a.IsEmpty() }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := String(nil, tc.subject)
			tc.apply(a)
			assert.Equal(t, Failed, a.State())
		})
	}
}

func TestBlankIsNotEmpty(t *testing.T) {
	a := String(nil, "  \n").IsNotEmpty()
	assert.Equal(t, Open, a.State())
	a.IsNotBlank()
	assert.Equal(t, Failed, a.State())
}

func TestStringFailureDetails(t *testing.T) {
	err := String(nil, "Hello World").Contains("Hello").DoesNotContain("World").Err()
	var failure *AssertionFailedError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.Step)
	assert.Equal(t, `does not contain "World"`, failure.Description)
	assert.Equal(t, `"Hello World"`, failure.Actual)
	assert.Equal(t, `"World"`, failure.Expected)
}

func TestIsEqualToIgnoringCase(t *testing.T) {
	assert.NoError(t, String(nil, "Straße").IsEqualToIgnoringCase("STRASSE").Err())
	assert.NoError(t, String(nil, "hello").IsEqualToIgnoringCase("HeLLo").Err())
	assert.Error(t, String(nil, "hello").IsEqualToIgnoringCase("help").Err())
}

func TestIsEqualToNormalizingUnicode(t *testing.T) {
	composed := "\uD30C\uB77C\uBBF8\uD130" // precomposed syllables
	decomposed := "\u1111\u1161\u1105\u1161\u1106\u1175\u1110\u1165"

	assert.Error(t, String(nil, decomposed).IsEqualTo(composed).Err())
	assert.NoError(t, String(nil, decomposed).IsEqualToNormalizingUnicode(composed).Err())
	assert.Error(t, String(nil, decomposed).IsEqualToNormalizingUnicode("\uD30C\uB77C").Err())
}
