package planner

import (
	"os"
	"testing"
	"time"

	helpers "github.com/launchdarkly/go-test-helpers/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sampleManifest = `
suites:
  - name: lifecycle
    cases:
      - name: third
        order: 0
      - name: first
        unordered: true
      - name: slow
        timeout: 2s
      - name: ignored
        skip: false
      - name: second
        skip: true
        skip_reason: tracked separately
`

func lifecycleCases() []TestCase {
	return []TestCase{
		NewTestCase("ignored", nil, Disabled("disabled")),
		NewTestCase("slow", nil, Timeout(time.Second)),
		NewTestCase("first", nil, Order(1)),
		NewTestCase("second", nil, Order(2)),
		NewTestCase("third", nil, Order(3)),
	}
}

func TestManifestOverridesMetadata(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, []string{"lifecycle"}, m.SuiteNames())

	cases, err := m.Apply("lifecycle", lifecycleCases())
	require.NoError(t, err)
	p, err := Plan(cases)
	require.NoError(t, err)

	assert.Equal(t,
		"1. [order 0] third\n"+
			"2. [order 2] second (skipped: tracked separately)\n"+
			"3. [unordered] ignored\n"+
			"4. [unordered] slow (timeout 2s)\n"+
			"5. [unordered] first\n",
		p.String())
}

func TestManifestDoesNotChangeInput(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	original := lifecycleCases()
	_, err = m.Apply("lifecycle", original)
	require.NoError(t, err)
	assert.Equal(t, 3, original[4].Order.IntValue())
}

func TestManifestIgnoresOtherSuites(t *testing.T) {
	m, err := ParseManifest([]byte(sampleManifest))
	require.NoError(t, err)
	cases, err := m.Apply("assertions", namedCases("x"))
	require.NoError(t, err)
	assert.Equal(t, namedCases("x")[0].Name, cases[0].Name)
}

func TestNilManifestAppliesNothing(t *testing.T) {
	var m *Manifest
	cases, err := m.Apply("lifecycle", lifecycleCases())
	require.NoError(t, err)
	assert.Len(t, cases, 5)
}

func TestManifestUnknownCaseIsAnError(t *testing.T) {
	m, err := ParseManifest([]byte("suites:\n  - name: s\n    cases:\n      - name: nope\n        order: 1\n"))
	require.NoError(t, err)
	_, err = m.Apply("s", namedCases("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown case "nope"`)
}

func TestManifestCanCreateDuplicateKeys(t *testing.T) {
	m, err := ParseManifest([]byte("suites:\n  - name: lifecycle\n    cases:\n      - name: third\n        order: 1\n"))
	require.NoError(t, err)
	cases, err := m.Apply("lifecycle", lifecycleCases())
	require.NoError(t, err)
	_, err = Plan(cases)
	var dup *DuplicateOrderKeyError
	assert.ErrorAs(t, err, &dup)
}

func TestManifestParseErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field":      "suites:\n  - name: s\n    cases:\n      - name: a\n        ordr: 1\n",
		"bad timeout":        "suites:\n  - name: s\n    cases:\n      - name: a\n        timeout: soon\n",
		"negative timeout":   "suites:\n  - name: s\n    cases:\n      - name: a\n        timeout: -1s\n",
		"missing suite name": "suites:\n  - cases: []\n",
		"missing case name":  "suites:\n  - name: s\n    cases:\n      - order: 1\n",
		"duplicate suite":    "suites:\n  - name: s\n  - name: s\n",
		"ordered unordered":  "suites:\n  - name: s\n    cases:\n      - name: a\n        order: 1\n        unordered: true\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestEmptyManifestIsValid(t *testing.T) {
	m, err := ParseManifest(nil)
	require.NoError(t, err)
	assert.Empty(t, m.SuiteNames())
}

func TestTimeoutNoneRemovesBound(t *testing.T) {
	m, err := ParseManifest([]byte("suites:\n  - name: lifecycle\n    cases:\n      - name: slow\n        timeout: none\n"))
	require.NoError(t, err)
	cases, err := m.Apply("lifecycle", lifecycleCases())
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cases[1].Timeout)
}

func TestDurationRoundTripsThroughYAML(t *testing.T) {
	d := Duration(1500 * time.Millisecond)
	data, err := yaml.Marshal(CaseOverride{Name: "a", Timeout: &d})
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeout: 1.5s")
}

func TestLoadManifestFromFile(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))
		m, err := LoadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"lifecycle"}, m.SuiteNames())
	})
}

func TestLoadManifestReportsPath(t *testing.T) {
	helpers.WithTempFile(func(path string) {
		require.NoError(t, os.WriteFile(path, []byte("suites: {"), 0o600))
		_, err := LoadManifest(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest("/nonexistent/manifest.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read manifest")
}
