package flex

import (
	"regexp"

	"bitbucket.org/creachadair/stringset"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// stateInfo is a registered start condition.
type stateInfo struct {
	name      string
	exclusive bool
}

// AddState registers a start condition. Re-registering an existing name is
// idempotent: the exclusive flag is simply overwritten with the latest
// call.
func (s *Scanner) AddState(name string, exclusive bool) error {
	if name != STATE_INITIAL && name != STATE_ANY && !identRe.MatchString(name) {
		return invalidNamef("state name %q", name)
	}
	if name == STATE_ANY {
		return invalidNamef("%q is reserved", STATE_ANY)
	}
	if _, ok := s.states[name]; !ok {
		s.stateOrder = append(s.stateOrder, name)
	}
	s.states[name] = &stateInfo{name: name, exclusive: exclusive}
	return nil
}

// registeredStates returns the set of every currently-registered state
// name. The set is unordered; its Elements come back sorted.
func (s *Scanner) registeredStates() stringset.Set {
	set := stringset.New()
	for _, name := range s.stateOrder {
		set.Add(name)
	}
	return set
}

// inclusiveStates returns every currently-registered non-exclusive state
// name, in registration order.
func (s *Scanner) inclusiveStates() []string {
	var out []string
	for _, name := range s.stateOrder {
		if st := s.states[name]; st != nil && !st.exclusive {
			out = append(out, name)
		}
	}
	return out
}

// resolveStateSpec implements the state-spec resolution rule:
//   - nil (absent): every currently-registered inclusive state.
//   - ["*"]: every currently-registered state.
//   - otherwise: exactly the named states, which must already be registered.
//
// "*" and an absent spec resolve against the registry *now* — a state
// registered afterward is never back-filled into an earlier rule's set.
func (s *Scanner) resolveStateSpec(spec []string) ([]string, error) {
	if spec == nil {
		out := s.inclusiveStates()
		if len(out) == 0 {
			return nil, emptyStateSetf("no inclusive states registered")
		}
		return out, nil
	}
	if len(spec) == 1 && spec[0] == STATE_ANY {
		out := s.registeredStates().Elements()
		if len(out) == 0 {
			return nil, emptyStateSetf("no states registered")
		}
		return out, nil
	}
	if len(spec) == 0 {
		return nil, emptyStateSetf("explicit state list is empty")
	}
	seen := stringset.New()
	var out []string
	for _, name := range spec {
		if _, ok := s.states[name]; !ok {
			return nil, unknownStatef("state %q", name)
		}
		if seen.Contains(name) {
			continue
		}
		seen.Add(name)
		out = append(out, name)
	}
	return out, nil
}
