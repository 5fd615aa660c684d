package framework

// TestLogger receives notifications as tests progress. Implementations are called from the
// goroutine that is running the test suite.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                           {}
func (n nullTestLogger) TestError(TestID, error)                      {}
func (n nullTestLogger) TestFinished(TestID, Outcome, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                   {}

// MultiTestLogger forwards every notification to each of its loggers in turn.
type MultiTestLogger []TestLogger

func (m MultiTestLogger) TestStarted(id TestID) {
	for _, l := range m {
		l.TestStarted(id)
	}
}

func (m MultiTestLogger) TestError(id TestID, err error) {
	for _, l := range m {
		l.TestError(id, err)
	}
}

func (m MultiTestLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	for _, l := range m {
		l.TestFinished(id, outcome, debugOutput)
	}
}

func (m MultiTestLogger) TestSkipped(id TestID, reason string) {
	for _, l := range m {
		l.TestSkipped(id, reason)
	}
}
