package flex

// Pattern is a rule's matching expression: either a regular expression
// source (the default) or a literal string to be matched verbatim.
// Construct one with Lit or Re, or pass a bare string to AddRule/AddStateRule
// (treated as Re).
type Pattern struct {
	Expr       string
	Literal    bool
	IgnoreCase bool

	// Unicode requests the "u" flag accepted by the pattern grammar
	// alongside "i". Go's regexp already matches UTF-8 runes rather than
	// bytes by default, so there's no distinct mode to switch on — this
	// flag exists so callers porting an existing grammar have somewhere to
	// put it, and compilePattern deliberately leaves it unread.
	Unicode bool
}

// Lit builds a Pattern matched verbatim (all regex metacharacters escaped).
func Lit(s string) Pattern { return Pattern{Expr: s, Literal: true} }

// Re builds a Pattern whose Expr is a regular-expression source.
func Re(s string) Pattern { return Pattern{Expr: s} }

// patternOf normalizes the permissive "string or Pattern" AddRule argument.
func patternOf(p interface{}) Pattern {
	switch v := p.(type) {
	case Pattern:
		return v
	case string:
		return Re(v)
	default:
		return Pattern{}
	}
}

// RuleSpec pairs a Pattern with its Action for batch registration via
// AddRules/AddStateRules.
type RuleSpec struct {
	Pattern interface{} // string or Pattern
	Action  Action
}

// Rule is a compiled pattern plus the action it triggers, shared by
// reference across every state it was registered for.
type Rule struct {
	pattern    Pattern
	matcher    *compiledMatcher
	hasBOL     bool
	hasEOL     bool
	isEOF      bool
	fixedWidth int // -1 when the pattern isn't a literal
	action     Action
	index      int
}

// Index returns the rule's scanner-global registration index, the
// tie-break key the Match Selector uses between equally-ranked candidates.
func (r *Rule) Index() int { return r.index }

// AddRule registers pattern for every currently-registered inclusive state.
func (s *Scanner) AddRule(pattern interface{}, action Action) (*Rule, error) {
	return s.AddStateRule(nil, pattern, action)
}

// AddRules registers a batch of rules for every currently-registered
// inclusive state, in order.
func (s *Scanner) AddRules(specs []RuleSpec) error {
	for _, spec := range specs {
		if _, err := s.AddRule(spec.Pattern, spec.Action); err != nil {
			return err
		}
	}
	return nil
}

// AddStateRule registers pattern for the states named in spec: nil means
// "every currently-registered inclusive state", []string{STATE_ANY} means
// "every currently-registered state", and any other slice names exactly
// the states to attach to (all of which must already be registered).
func (s *Scanner) AddStateRule(spec []string, pattern interface{}, action Action) (*Rule, error) {
	states, err := s.resolveStateSpec(spec)
	if err != nil {
		return nil, err
	}
	p := patternOf(pattern)

	rule := &Rule{pattern: p, action: action, index: s.nextRuleIdx, fixedWidth: -1}
	s.nextRuleIdx++

	if !p.Literal && p.Expr == RULE_EOF {
		rule.isEOF = true
	} else {
		matcher, hasBOL, hasEOL, fixedWidth, err := compilePattern(p, s.ignoreCase, s.defs, s.defsLower, s.Position())
		if err != nil {
			return nil, err
		}
		rule.matcher = matcher
		rule.hasBOL = hasBOL
		rule.hasEOL = hasEOL
		rule.fixedWidth = fixedWidth
	}

	for _, name := range states {
		s.rules[name] = append(s.rules[name], rule)
	}
	return rule, nil
}

// AddStateRules registers a batch of rules for the given state spec, in
// order.
func (s *Scanner) AddStateRules(spec []string, specs []RuleSpec) error {
	for _, rs := range specs {
		if _, err := s.AddStateRule(spec, rs.Pattern, rs.Action); err != nil {
			return err
		}
	}
	return nil
}

// AddDefinition registers a named regex fragment that {name} rule patterns
// may reference. Must be added before any rule that references it; definitions
// are immutable and consulted only at rule-compile time.
func (s *Scanner) AddDefinition(name, pattern string) error {
	if !identRe.MatchString(name) {
		return invalidNamef("definition name %q", name)
	}
	if pattern == "" {
		return emptyPatternf("definition %q", name)
	}
	s.defs[name] = pattern
	s.defsLower[lowerASCII(name)] = pattern
	return nil
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
