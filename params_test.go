package main

import (
	"testing"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestCommandParamsDefaultsFromEnvironment(t *testing.T) {
	p := newCommandParams(fakeEnv(nil))
	assert.False(t, p.debug)
	assert.Equal(t, "", p.manifestPath)

	p = newCommandParams(fakeEnv(map[string]string{
		envDebug:    "true",
		envManifest: "suites.yaml",
	}))
	assert.True(t, p.debug)
	assert.Equal(t, "suites.yaml", p.manifestPath)

	p = newCommandParams(fakeEnv(map[string]string{envDebug: "maybe"}))
	assert.False(t, p.debug)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	p := newCommandParams(fakeEnv(map[string]string{envDebug: "1", envManifest: "a.yaml"}))
	cmd := newRootCommand(p, nil)
	runCmd, _, err := cmd.Find([]string{"run"})
	assert.NoError(t, err)

	assert.NoError(t, cmd.PersistentFlags().Parse([]string{"--manifest", "b.yaml"}))
	assert.NoError(t, runCmd.Flags().Parse([]string{"--debug=false", "--run", "^lifecycle/", "--skip", "timeout"}))

	assert.Equal(t, "b.yaml", p.manifestPath)
	assert.False(t, p.debug)
	assert.True(t, p.filters.AsFilter(framework.NewTestID("lifecycle", "first")))
	assert.False(t, p.filters.AsFilter(framework.NewTestID("lifecycle", "timeout")))
	assert.False(t, p.filters.AsFilter(framework.NewTestID("assertions", "string validation")))
}

func TestRerunCommand(t *testing.T) {
	results := framework.Results{
		Failures: []framework.TestResult{
			{TestID: framework.NewTestID("lifecycle", "timeout"), Outcome: framework.TimedOut},
			{TestID: framework.NewTestID("assertions", "date-time validation"), Outcome: framework.Failed},
		},
	}
	assert.Equal(t,
		`fluent-test-harness run --run '^lifecycle/timeout$' --run '^assertions/date-time validation$'`,
		rerunCommand("fluent-test-harness", results))
}

func TestCommandBuilderQuotes(t *testing.T) {
	var b commandBuilder
	b.add("echo", "a b", "it's")
	assert.Equal(t, `echo 'a b' 'it'"'"'s'`, b.String())
}
