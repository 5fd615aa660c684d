package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/google/uuid"
)

type jsonReport struct {
	RunID     string            `json:"runId"`
	StartedAt time.Time         `json:"startedAt"`
	Duration  string            `json:"duration"`
	OK        bool              `json:"ok"`
	Summary   framework.Summary `json:"summary"`
	Tests     []jsonTestResult  `json:"tests"`
}

type jsonTestResult struct {
	ID         string            `json:"id"`
	Outcome    framework.Outcome `json:"outcome"`
	SkipReason string            `json:"skipReason,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	ElapsedMS  int64             `json:"elapsedMs"`
}

func newJSONReport(runID uuid.UUID, started time.Time, duration time.Duration, results framework.Results) jsonReport {
	r := jsonReport{
		RunID:     runID.String(),
		StartedAt: started.UTC(),
		Duration:  duration.Round(time.Millisecond).String(),
		OK:        results.OK(),
		Summary:   results.Summary(),
		Tests:     make([]jsonTestResult, 0, len(results.Tests)),
	}
	for _, t := range results.Tests {
		entry := jsonTestResult{
			ID:         t.TestID.String(),
			Outcome:    t.Outcome,
			SkipReason: t.SkipReason,
			ElapsedMS:  t.Elapsed.Milliseconds(),
		}
		for _, err := range t.Errors {
			entry.Errors = append(entry.Errors, err.Error())
		}
		r.Tests = append(r.Tests, entry)
	}
	return r
}

func writeJSONReport(path string, report jsonReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
