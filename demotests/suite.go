package demotests

import (
	"fmt"

	"github.com/launchdarkly/fluent-test-harness/framework"
	"github.com/launchdarkly/fluent-test-harness/framework/planner"
)

// Suite is a named list of test cases. The name is the first component of each case's TestID.
type Suite struct {
	Name  string
	Cases []planner.TestCase
}

// PlannedSuite is a suite whose execution order has been decided.
type PlannedSuite struct {
	Name string
	Plan planner.ExecutionPlan
}

// AllSuites returns every demonstration suite, in the order they are run.
func AllSuites() []Suite {
	return []Suite{
		{Name: "lifecycle", Cases: LifecycleCases()},
		{Name: "assertions", Cases: AssertionCases()},
	}
}

// PlanSuites applies the manifest overrides, if any, and plans each suite. It fails without
// planning anything further if one suite cannot be planned, or if the manifest names a suite
// that does not exist.
func PlanSuites(suites []Suite, manifest *planner.Manifest) ([]PlannedSuite, error) {
	if manifest != nil {
		known := make(map[string]bool, len(suites))
		for _, s := range suites {
			known[s.Name] = true
		}
		for _, name := range manifest.SuiteNames() {
			if !known[name] {
				return nil, fmt.Errorf("manifest refers to unknown suite %q", name)
			}
		}
	}

	ret := make([]PlannedSuite, 0, len(suites))
	for _, s := range suites {
		cases, err := manifest.Apply(s.Name, s.Cases)
		if err != nil {
			return nil, err
		}
		plan, err := planner.Plan(cases)
		if err != nil {
			return nil, fmt.Errorf("suite %q: %w", s.Name, err)
		}
		ret = append(ret, PlannedSuite{Name: s.Name, Plan: plan})
	}
	return ret, nil
}

// RunTestSuites executes the planned suites one after another and collects all of their
// results.
func RunTestSuites(
	suites []PlannedSuite,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		for _, s := range suites {
			c.Group(s.Name, s.Plan.RunIn)
		}
	})
}
