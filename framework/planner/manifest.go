package planner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
	"gopkg.in/yaml.v3"
)

// Manifest overrides the metadata of test cases from outside the code that declares them.
//
// The format is:
//
//	suites:
//	  - name: lifecycle
//	    cases:
//	      - name: third
//	        order: 0
//	      - name: slow
//	        timeout: 2s
//	      - name: flaky
//	        skip: true
//	        skip_reason: "tracked separately"
//	      - name: first
//	        unordered: true
//
// A timeout of "none" or "0" removes the case's time bound.
type Manifest struct {
	Suites []SuiteOverrides `yaml:"suites"`
}

// SuiteOverrides holds the overrides for the cases of one suite.
type SuiteOverrides struct {
	Name  string         `yaml:"name"`
	Cases []CaseOverride `yaml:"cases"`
}

// CaseOverride changes the metadata of the case with the same name. Fields that are not set
// leave the declared value alone.
type CaseOverride struct {
	Name       string    `yaml:"name"`
	Order      *int      `yaml:"order,omitempty"`
	Unordered  bool      `yaml:"unordered,omitempty"`
	Skip       *bool     `yaml:"skip,omitempty"`
	SkipReason string    `yaml:"skip_reason,omitempty"`
	Timeout    *Duration `yaml:"timeout,omitempty"`
}

// Duration is a time.Duration written in Go syntax ("1500ms", "2s"), or "none".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timeout must be a duration string", value.Line)
	}
	s := strings.TrimSpace(value.Value)
	if s == "none" || s == "0" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	if parsed < 0 {
		return fmt.Errorf("line %d: timeout cannot be negative", value.Line)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	if d == 0 {
		return "none", nil
	}
	return time.Duration(d).String(), nil
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest parses manifest YAML. Unknown fields are rejected so that a misspelled key does
// not silently do nothing.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	seen := make(map[string]bool)
	for i, s := range m.Suites {
		if s.Name == "" {
			return nil, fmt.Errorf("suites[%d]: name is required", i)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("suite %q appears more than once", s.Name)
		}
		seen[s.Name] = true
		for j, c := range s.Cases {
			if c.Name == "" {
				return nil, fmt.Errorf("suite %q: cases[%d]: name is required", s.Name, j)
			}
			if c.Unordered && c.Order != nil {
				return nil, fmt.Errorf("suite %q: case %q cannot be both ordered and unordered", s.Name, c.Name)
			}
		}
	}
	return &m, nil
}

// SuiteNames returns the names of all suites mentioned in the manifest.
func (m *Manifest) SuiteNames() []string {
	var ret []string
	for _, s := range m.Suites {
		ret = append(ret, s.Name)
	}
	return ret
}

// Apply returns a copy of cases with the overrides for the named suite applied. If the manifest
// does not mention the suite, the cases are returned unchanged. An override for a case name
// that is not in cases is an error.
func (m *Manifest) Apply(suite string, cases []TestCase) ([]TestCase, error) {
	ret := append([]TestCase(nil), cases...)
	if m == nil {
		return ret, nil
	}
	var overrides *SuiteOverrides
	for i := range m.Suites {
		if m.Suites[i].Name == suite {
			overrides = &m.Suites[i]
			break
		}
	}
	if overrides == nil {
		return ret, nil
	}

	index := make(map[string]int, len(ret))
	for i, tc := range ret {
		index[tc.Name] = i
	}
	for _, o := range overrides.Cases {
		i, ok := index[o.Name]
		if !ok {
			return nil, fmt.Errorf("manifest refers to unknown case %q in suite %q", o.Name, suite)
		}
		o.applyTo(&ret[i])
	}
	return ret, nil
}

func (o CaseOverride) applyTo(tc *TestCase) {
	switch {
	case o.Unordered:
		tc.Order = ldvalue.OptionalInt{}
	case o.Order != nil:
		tc.Order = ldvalue.NewOptionalIntFromPointer(o.Order)
	}
	if o.Skip != nil {
		tc.Skip = *o.Skip
		if !tc.Skip {
			tc.SkipReason = ""
		}
	}
	if o.SkipReason != "" {
		tc.SkipReason = o.SkipReason
	}
	if o.Timeout != nil {
		tc.Timeout = time.Duration(*o.Timeout)
	}
}
