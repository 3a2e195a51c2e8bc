package flex

// Echo writes the current matched text to the configured echo sink
// unchanged.
func (s *Scanner) Echo() {
	s.echoSink(s.text)
}

// Reject marks the rule that just matched as ineligible at the current
// cursor position and rewinds the cursor to the start of this match, so
// the Match Selector re-runs excluding it. The rejected
// set is cleared the next time the cursor makes forward progress.
func (s *Scanner) Reject() {
	if s.lastRuleIndex < 0 {
		return
	}
	s.rejected[s.lastRuleIndex] = struct{}{}
	s.index -= len(s.text)
	s.text = ""
	s.pos = advancePosition(Position{Line: 1, Column: 1}, s.source[:s.index])
}

// More requests that the next match's text be appended to the current
// text rather than replacing it, carrying the cursor forward across the
// concatenation.
func (s *Scanner) More() {
	s.readMore = true
}

// Less truncates the matched text to its first n bytes and rewinds the
// cursor to just past that point, returning the remainder to the input
// so it's reconsidered on the next pass.
func (s *Scanner) Less(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s.text) {
		n = len(s.text)
	}
	s.index -= len(s.text) - n
	s.text = s.text[:n]
	s.pos = advancePosition(Position{Line: 1, Column: 1}, s.source[:s.index])
}

// Unput inserts text into the input at the cursor, so it is the next thing
// scanned, as if it had never been consumed. Action code typically calls this after
// Less to push back characters that belong to the next token.
func (s *Scanner) Unput(text string) error {
	s.source = s.source[:s.index] + text + s.source[s.index:]
	return nil
}

// Input consumes and returns up to n bytes directly from the input ahead
// of the cursor, bypassing rule matching entirely. n defaults to 1.
func (s *Scanner) Input(n ...int) string {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	if count < 0 {
		count = 0
	}
	end := s.index + count
	if end > len(s.source) {
		end = len(s.source)
	}
	out := s.source[s.index:end]
	s.index = end
	s.pos = advancePosition(s.pos, out)
	return out
}

// Begin switches the active start condition to name, which must already be
// registered. SwitchState is an alias kept for readers more familiar with
// that name.
func (s *Scanner) Begin(name string) error {
	if _, ok := s.states[name]; !ok {
		return unknownStatef("state %q", name)
	}
	s.state = name
	return nil
}

// SwitchState is an alias for Begin.
func (s *Scanner) SwitchState(name string) error { return s.Begin(name) }

// PushState saves the current start condition on a stack and switches to
// name.
func (s *Scanner) PushState(name string) error {
	if _, ok := s.states[name]; !ok {
		return unknownStatef("state %q", name)
	}
	s.stateStack = append(s.stateStack, s.state)
	s.state = name
	return nil
}

// PopState restores the most recently pushed start condition.
func (s *Scanner) PopState() error {
	if len(s.stateStack) == 0 {
		return ErrStackUnderflow
	}
	last := len(s.stateStack) - 1
	s.state = s.stateStack[last]
	s.stateStack = s.stateStack[:last]
	return nil
}

// TopState reports the state one level below the current one on the push
// stack, without popping it. ok is false when the stack is empty.
func (s *Scanner) TopState() (string, bool) {
	if len(s.stateStack) == 0 {
		return "", false
	}
	return s.stateStack[len(s.stateStack)-1], true
}

// Terminate ends the scan: every subsequent ScanOne/Lex call returns EOF
// without consulting rules again, until Restart or SetSource installs
// input again.
func (s *Scanner) Terminate() Token {
	s.terminated = true
	return EOF
}

// Restart installs a replacement source (if given) and resets the cursor
// to 0, clearing the current token text and rejected set. Unlike Reset, it
// leaves the active start condition and the push/pop stack exactly as
// they were — only the source and cursor are reinitialized.
func (s *Scanner) Restart(newSource ...string) error {
	src := s.source
	if len(newSource) > 0 {
		src = newSource[0]
	}
	s.source = src
	s.index = 0
	s.tokenStart = 0
	s.text = ""
	s.readMore = false
	s.rejected = map[int]struct{}{}
	s.lastRuleIndex = -1
	s.terminated = false
	s.pos = Position{Line: 1, Column: 1}
	return nil
}
