package main

import (
	"fmt"
	"io"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressTestLogger shows a single progress bar for the whole run instead of a line per test.
type ProgressTestLogger struct {
	bar                     *progressbar.ProgressBar
	passed, failed, skipped int
}

func NewProgressTestLogger(total int, w io.Writer) *ProgressTestLogger {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(describeProgress(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
	return &ProgressTestLogger{bar: bar}
}

func describeProgress(passed, failed, skipped int) string {
	return color.CyanString("Running tests: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d", failed) +
		" | " +
		color.YellowString("skipped: %d]", skipped)
}

func (p *ProgressTestLogger) TestStarted(framework.TestID)     {}
func (p *ProgressTestLogger) TestError(framework.TestID, error) {}

func (p *ProgressTestLogger) TestFinished(id framework.TestID, outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	if outcome == framework.Passed {
		p.passed++
	} else {
		p.failed++
	}
	p.advance()
}

func (p *ProgressTestLogger) TestSkipped(id framework.TestID, reason string) {
	p.skipped++
	p.advance()
}

func (p *ProgressTestLogger) advance() {
	p.bar.Describe(describeProgress(p.passed, p.failed, p.skipped))
	_ = p.bar.Add(1)
}
