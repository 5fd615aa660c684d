package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONReport(t *testing.T) {
	failure := framework.TestResult{
		TestID:  framework.NewTestID("lifecycle", "timeout"),
		Outcome: framework.TimedOut,
		Errors:  []error{errors.New("took too long")},
		Elapsed: 1000 * time.Millisecond,
	}
	results := framework.Results{
		Tests: []framework.TestResult{
			{TestID: framework.NewTestID("lifecycle", "first"), Outcome: framework.Passed, Elapsed: 2 * time.Millisecond},
			{TestID: framework.NewTestID("lifecycle", "ignored"), Outcome: framework.Skipped, SkipReason: "disabled"},
			failure,
		},
		Failures: []framework.TestResult{failure},
	}
	runID := uuid.New()
	started := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, writeJSONReport(path, newJSONReport(runID, started, 1500*time.Millisecond, results)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, runID.String(), decoded["runId"])
	assert.Equal(t, "2024-03-01T10:00:00Z", decoded["startedAt"])
	assert.Equal(t, "1.5s", decoded["duration"])
	assert.Equal(t, false, decoded["ok"])
	assert.Equal(t, map[string]interface{}{
		"passed": 1.0, "failed": 0.0, "skipped": 1.0, "timedOut": 1.0,
	}, decoded["summary"])

	tests := decoded["tests"].([]interface{})
	require.Len(t, tests, 3)
	assert.Equal(t, map[string]interface{}{
		"id": "lifecycle/ignored", "outcome": "skipped", "skipReason": "disabled", "elapsedMs": 0.0,
	}, tests[1])
	assert.Equal(t, map[string]interface{}{
		"id": "lifecycle/timeout", "outcome": "timed out", "errors": []interface{}{"took too long"}, "elapsedMs": 1000.0,
	}, tests[2])
}

func TestJSONReportWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	err := writeJSONReport(path, jsonReport{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
