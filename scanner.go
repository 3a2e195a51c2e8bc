// Package flex implements the core of a runtime-configurable lexical
// scanner modeled after the classic flex tool: a caller declares named
// sub-expressions, start conditions, and rules (pattern plus action), and
// the Scanner drives a scanning loop over an in-memory input string,
// selecting the best-matching rule at each position and invoking the
// caller's action.
//
// Command-line entry points, process I/O, and higher-level parser
// integration are not part of this package; see cmd/flexdemo for an
// example driver built on top of it.
package flex

// Token is any value produced by a user Action. nil means "keep scanning"
// (the reserved "nothing" sentinel); EOF (0) means end of input. Callers
// must not produce either as a genuine token value.
type Token = any

// Action is the callable surface invoked when a Rule matches. It runs to
// completion before the driver resumes; it may call any of the
// methods in action.go to affect the cursor, token text, or start
// condition. Returning (nil, nil) is equivalent to DISCARD.
type Action func(s *Scanner) (Token, error)

// Scanner owns all configuration (definitions, states, rules) and all
// runtime state (source, cursor, current token text, start condition
// stack). It is not safe for concurrent use, and nested Lex calls from
// within an Action are not supported.
type Scanner struct {
	// configuration
	defs         map[string]string
	defsLower    map[string]string
	states       map[string]*stateInfo
	stateOrder   []string
	rules        map[string][]*Rule
	nextRuleIdx  int
	ignoreCase   bool
	debugEnabled bool
	echoSink     func(string)
	traceSink    func(TraceRecord)

	// runtime state
	source        string
	index         int
	tokenStart    int
	text          string
	state         string
	stateStack    []string
	readMore      bool
	rejected      map[int]struct{}
	lastRuleIndex int
	terminated    bool
	pos           Position
}

// New creates a Scanner with no definitions, states beyond INITIAL, or
// rules. The ECHO sink defaults to discarding output; wire EchoToWriter if
// you want flex's traditional stdout behaviour.
func New() *Scanner {
	s := &Scanner{
		defs:          map[string]string{},
		defsLower:     map[string]string{},
		states:        map[string]*stateInfo{},
		rules:         map[string][]*Rule{},
		echoSink:      discardEcho,
		traceSink:     discardTrace,
		lastRuleIndex: -1,
	}
	s.states[STATE_INITIAL] = &stateInfo{name: STATE_INITIAL, exclusive: false}
	s.stateOrder = append(s.stateOrder, STATE_INITIAL)
	s.state = STATE_INITIAL
	s.resetRuntime()
	return s
}

// Clear resets all configuration (definitions, states, rules) back to the
// state a fresh New() would have, and also resets runtime state.
func (s *Scanner) Clear() {
	s.defs = map[string]string{}
	s.defsLower = map[string]string{}
	s.states = map[string]*stateInfo{STATE_INITIAL: {name: STATE_INITIAL}}
	s.stateOrder = []string{STATE_INITIAL}
	s.rules = map[string][]*Rule{}
	s.nextRuleIdx = 0
	s.ignoreCase = false
	s.debugEnabled = false
	s.echoSink = discardEcho
	s.traceSink = discardTrace
	s.Reset()
}

// Reset reinitializes runtime state only: source, cursor, token text,
// start condition, and the state stack. Configuration is untouched.
func (s *Scanner) Reset() {
	s.state = STATE_INITIAL
	s.resetRuntime()
}

func (s *Scanner) resetRuntime() {
	s.source = ""
	s.index = 0
	s.tokenStart = 0
	s.text = ""
	s.stateStack = nil
	s.readMore = false
	s.rejected = map[int]struct{}{}
	s.lastRuleIndex = -1
	s.terminated = false
	s.pos = Position{Line: 1, Column: 1}
}

// SetSource installs s as the scanner's input and positions the cursor at
// its start, leaving configuration, start condition, and state stack
// untouched.
func (s *Scanner) SetSource(src string) {
	s.source = src
	s.index = 0
	s.tokenStart = 0
	s.text = ""
	s.readMore = false
	s.rejected = map[int]struct{}{}
	s.lastRuleIndex = -1
	s.terminated = false
	s.pos = Position{Line: 1, Column: 1}
}

// Text returns the current token text, mutable by user actions via More,
// Less, or direct replacement is not exposed — only the action protocol in
// action.go may mutate it.
func (s *Scanner) Text() string { return s.text }

// State returns the name of the currently active start condition.
func (s *Scanner) State() string { return s.state }

// Index returns the current cursor offset into Source.
func (s *Scanner) Index() int { return s.index }

// Source returns the current input string, as mutated by Unput/Restart.
func (s *Scanner) Source() string { return s.source }
