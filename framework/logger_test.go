package framework

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := PrefixedLogger("harness: ", log.New(&buf, "", 0))
	logger.Printf("planned %d suites", 2)
	assert.Equal(t, "harness: planned 2 suites\n", buf.String())

	PrefixedLogger("x", nil).Printf("goes nowhere")
}

func TestCapturedOutputDump(t *testing.T) {
	var l CapturingLogger
	l.Printf("one")
	l.Printf("two %s", "more")

	var buf bytes.Buffer
	l.Output().Dump(&buf, "> ")
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 2)
	assert.Contains(t, string(lines[1]), "] two more")
	assert.Equal(t, []string{"one", "two more"}, l.Output().Messages())
}
