package flex

// SetIgnoreCase makes every subsequently-compiled pattern case-insensitive
// unless it already requests the "i" flag explicitly (see compilePattern).
// Patterns compiled before this call are not retroactively affected.
func (s *Scanner) SetIgnoreCase(ignore bool) {
	s.ignoreCase = ignore
}

// SetDebugEnabled turns rule-selection tracing on or off. Has no effect
// unless a trace sink has also been set.
func (s *Scanner) SetDebugEnabled(enabled bool) {
	s.debugEnabled = enabled
}

// SetEchoSink installs the collaborator that receives text whenever the
// default or an explicit Echo action fires. A nil sink discards output.
func (s *Scanner) SetEchoSink(sink func(string)) {
	if sink == nil {
		sink = discardEcho
	}
	s.echoSink = sink
}

// SetTraceSink installs the collaborator that receives one TraceRecord per
// selected rule while debugging is enabled. A nil sink discards records.
func (s *Scanner) SetTraceSink(sink func(TraceRecord)) {
	if sink == nil {
		sink = discardTrace
	}
	s.traceSink = sink
}
