package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/launchdarkly/fluent-test-harness/framework"

	"github.com/alessio/shellescape"
	"github.com/spf13/cobra"
)

const (
	envDebug    = "FLUENT_HARNESS_DEBUG"
	envManifest = "FLUENT_HARNESS_MANIFEST"
)

type commandParams struct {
	filters      framework.RegexFilters
	manifestPath string
	debug        bool
	debugAll     bool
	progress     bool
	jsonPath     string
}

// newCommandParams takes its defaults from the environment. Command-line flags override them.
func newCommandParams(getenv func(string) string) *commandParams {
	p := &commandParams{manifestPath: getenv(envManifest)}
	if debug, err := strconv.ParseBool(getenv(envDebug)); err == nil {
		p.debug = debug
	}
	return p
}

func (p *commandParams) addCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&p.manifestPath, "manifest", p.manifestPath,
		"YAML file that overrides case order, skipping and timeouts (env "+envManifest+")")
}

func (p *commandParams) addRunFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Var(&p.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&p.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&p.debug, "debug", p.debug, "enable debug logging for failed tests (env "+envDebug+")")
	fs.BoolVar(&p.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.BoolVar(&p.progress, "progress", false, "show a progress bar instead of per-test output")
	fs.StringVar(&p.jsonPath, "json", "", "write a JSON report of the run to this file")
}

// rerunCommand builds a command line that runs only the tests that failed in results.
func rerunCommand(program string, results framework.Results) string {
	var cmd commandBuilder
	cmd.add(program, "run")
	for _, f := range results.Failures {
		cmd.add("--run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	return cmd.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
