package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/fluent-test-harness/demotests"
	"github.com/launchdarkly/fluent-test-harness/framework"
	"github.com/launchdarkly/fluent-test-harness/framework/planner"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// errTestsFailed is returned by the run command when at least one test failed or timed out. The
// details have already been printed, so main only sets the exit code.
var errTestsFailed = errors.New("some tests failed")

func main() {
	// A .env file is optional; variables already in the environment take precedence.
	_ = godotenv.Load()

	params := newCommandParams(os.Getenv)
	if err := newRootCommand(params, os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand(params *commandParams, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "fluent-test-harness",
		Short:         "Plans and runs the fluent assertion demonstration suites",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	params.addCommonFlags(root)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the test suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuites(cmd.Root().Name(), params, demotests.AllSuites(), out)
		},
	}
	params.addRunFlags(runCmd)

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the order in which the test cases would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPlans(params, demotests.AllSuites(), out)
		},
	}

	root.AddCommand(runCmd, planCmd)
	return root
}

func planSuites(params *commandParams, suites []demotests.Suite) ([]demotests.PlannedSuite, error) {
	var manifest *planner.Manifest
	if params.manifestPath != "" {
		m, err := planner.LoadManifest(params.manifestPath)
		if err != nil {
			return nil, err
		}
		manifest = m
	}
	return demotests.PlanSuites(suites, manifest)
}

func printPlans(params *commandParams, suites []demotests.Suite, out io.Writer) error {
	planned, err := planSuites(params, suites)
	if err != nil {
		return err
	}
	for i, s := range planned {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, color.CyanString("[%s]", s.Name))
		fmt.Fprint(out, s.Plan.String())
	}
	return nil
}

func runSuites(program string, params *commandParams, suites []demotests.Suite, out io.Writer) error {
	planned, err := planSuites(params, suites)
	if err != nil {
		return err
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.PrefixedLogger("harness: ", log.New(out, "", log.LstdFlags))
	}
	total := 0
	for _, s := range planned {
		mainDebugLogger.Printf("suite %q: %d cases in order %v", s.Name, s.Plan.Len(), s.Plan.Names())
		total += s.Plan.Len()
	}

	fmt.Fprintln(out)
	framework.PrintFilterDescription(out, params.filters)

	runID := uuid.New()
	fmt.Fprintf(out, "Running test suites (run ID %s)\n", runID)

	var testLogger framework.TestLogger
	if params.progress {
		testLogger = NewProgressTestLogger(total, out)
	} else {
		testLogger = &ConsoleTestLogger{
			Out:                  out,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		}
	}
	var filter framework.Filter
	if params.filters.IsDefined() {
		filter = params.filters.AsFilter
	}

	started := time.Now()
	results := demotests.RunTestSuites(planned, filter, testLogger)
	duration := time.Since(started)

	fmt.Fprintln(out)
	printResults(out, results)

	if params.jsonPath != "" {
		report := newJSONReport(runID, started, duration, results)
		if err := writeJSONReport(params.jsonPath, report); err != nil {
			return err
		}
		mainDebugLogger.Printf("wrote report to %s", params.jsonPath)
	}

	if !results.OK() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To run only the tests that failed:")
		fmt.Fprintf(out, "  %s\n", rerunCommand(program, results))
		return errTestsFailed
	}
	return nil
}

func printResults(out io.Writer, results framework.Results) {
	summary := results.Summary()
	if results.OK() {
		fmt.Fprintln(out, color.GreenString("All tests passed (%s)", summary))
		return
	}
	fmt.Fprintln(out, color.RedString("FAILED (%s)", summary))
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s: %s\n", f.Outcome, f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}
