package framework

import (
	"fmt"
	"strings"
	"time"
)

// Outcome is the final state of a single test.
type Outcome int

const (
	Passed Outcome = iota
	Failed
	Skipped
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Skipped:
		return "skipped"
	case TimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText lets outcomes appear by name in JSON reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Passed, Failed, Skipped, TimedOut} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown test outcome %q", text)
}

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID     TestID
	Outcome    Outcome
	Errors     []error
	SkipReason string
	Elapsed    time.Duration
}

// Summary is the number of tests that ended with each outcome.
type Summary struct {
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
	TimedOut int `json:"timedOut"`
}

func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped + s.TimedOut
}

func (s Summary) String() string {
	return fmt.Sprintf("%d passed, %d failed, %d timed out, %d skipped",
		s.Passed, s.Failed, s.TimedOut, s.Skipped)
}

// OK is true if no test failed or timed out. Skipped tests do not count against it.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) Summary() Summary {
	var s Summary
	for _, t := range r.Tests {
		switch t.Outcome {
		case Passed:
			s.Passed++
		case Failed:
			s.Failed++
		case Skipped:
			s.Skipped++
		case TimedOut:
			s.TimedOut++
		}
	}
	return s
}

// Find returns the result for the test with the given ID, if there was one.
func (r Results) Find(id TestID) (TestResult, bool) {
	for _, t := range r.Tests {
		if t.TestID.String() == id.String() {
			return t, true
		}
	}
	return TestResult{}, false
}

type TestID struct {
	Path []string
}

// NewTestID returns an ID with the given path components.
func NewTestID(path ...string) TestID {
	return TestID{Path: append([]string(nil), path...)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns a new ID for a subtest of this one.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}
