package planner

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ExecutionPlan is the sequence in which the cases of a suite will be considered. Skipped cases
// stay in the plan so they can be reported, but their bodies never run.
type ExecutionPlan struct {
	cases []TestCase
}

// Plan decides the execution order for a suite.
//
// Cases that have an order key come first, in ascending key order. They are followed by the
// cases without a key, in the order they were declared. If two cases share a key, Plan returns
// a *DuplicateOrderKeyError and no plan.
func Plan(cases []TestCase) (ExecutionPlan, error) {
	var ordered, unordered []TestCase
	owners := make(map[int]string)
	for _, tc := range cases {
		if !tc.IsOrdered() {
			unordered = append(unordered, tc)
			continue
		}
		key := tc.Order.IntValue()
		if first, taken := owners[key]; taken {
			return ExecutionPlan{}, &DuplicateOrderKeyError{Key: key, First: first, Second: tc.Name}
		}
		owners[key] = tc.Name
		ordered = append(ordered, tc)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order.IntValue() < ordered[j].Order.IntValue()
	})
	return ExecutionPlan{cases: append(ordered, unordered...)}, nil
}

// MustPlan is like Plan but panics on error. It is meant for suites declared in code, where a
// duplicate key is a programming mistake.
func MustPlan(cases []TestCase) ExecutionPlan {
	p, err := Plan(cases)
	if err != nil {
		panic(err)
	}
	return p
}

func (p ExecutionPlan) Len() int {
	return len(p.cases)
}

// Cases returns a copy of the planned cases in execution order.
func (p ExecutionPlan) Cases() []TestCase {
	return append([]TestCase(nil), p.cases...)
}

func (p ExecutionPlan) Names() []string {
	ret := make([]string, 0, len(p.cases))
	for _, tc := range p.cases {
		ret = append(ret, tc.Name)
	}
	return ret
}

// String lists the plan one case per line, for example:
//
//	1. [order 1] first
//	2. [unordered] slow (timeout 1s)
//	3. [unordered] ignored (skipped: disabled)
func (p ExecutionPlan) String() string {
	var b strings.Builder
	for i, tc := range p.cases {
		orderLabel := "unordered"
		if tc.IsOrdered() {
			orderLabel = "order " + strconv.Itoa(tc.Order.IntValue())
		}
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, orderLabel, tc.Name)
		if tc.Timeout > 0 {
			fmt.Fprintf(&b, " (timeout %s)", tc.Timeout)
		}
		if tc.Skip {
			if tc.SkipReason == "" {
				b.WriteString(" (skipped)")
			} else {
				fmt.Fprintf(&b, " (skipped: %s)", tc.SkipReason)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
