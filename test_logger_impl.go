package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/fatih/color"
)

// ConsoleTestLogger prints each test as it runs, along with any errors it reports.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	failed := outcome != framework.Passed
	switch outcome {
	case framework.Failed:
		fmt.Fprintln(c.out(), color.RedString("  FAILED: %s", id))
	case framework.TimedOut:
		fmt.Fprintln(c.out(), color.RedString("  TIMED OUT: %s", id))
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintln(c.out(), color.YellowString("  SKIPPED: %s", id))
	} else {
		fmt.Fprintln(c.out(), color.YellowString("  SKIPPED: %s (%s)", id, reason))
	}
}
