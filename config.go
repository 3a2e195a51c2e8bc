package flex

import (
	"github.com/pelletier/go-toml/v2"
)

// configFile is the TOML shape LoadConfig understands:
//
//	ignore_case = true
//
//	[[definitions]]
//	name = "DIGIT"
//	pattern = "[0-9]"
//
//	[[states]]
//	name = "COMMENT"
//	exclusive = true
//
//	[[rules]]
//	states = ["COMMENT"]   # omit for "every inclusive state"; ["*"] for all
//	pattern = "*/"
//	literal = true
//	action = "endComment"  # looked up in the actions map passed to LoadConfig
type configFile struct {
	IgnoreCase  bool             `toml:"ignore_case"`
	Definitions []configDef      `toml:"definitions"`
	States      []configState    `toml:"states"`
	Rules       []configRuleSpec `toml:"rules"`
}

type configDef struct {
	Name    string `toml:"name"`
	Pattern string `toml:"pattern"`
}

type configState struct {
	Name      string `toml:"name"`
	Exclusive bool   `toml:"exclusive"`
}

type configRuleSpec struct {
	States     []string `toml:"states"`
	Pattern    string   `toml:"pattern"`
	Literal    bool     `toml:"literal"`
	IgnoreCase bool     `toml:"ignore_case"`
	Action     string   `toml:"action"`
}

// LoadConfig builds a Scanner from a TOML document describing its
// definitions, states, and rules as data. Rules are added in file order,
// so the resulting registration indices — and therefore tie-break order —
// match the file's top-to-bottom reading order. An action name absent from
// actions resolves to DISCARD, exactly like a nil Action passed to
// AddStateRule.
func LoadConfig(data []byte, actions map[string]Action) (*Scanner, error) {
	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, invalidPatternf("config: %s", err)
	}

	s := New()
	s.SetIgnoreCase(cfg.IgnoreCase)

	for _, def := range cfg.Definitions {
		if err := s.AddDefinition(def.Name, def.Pattern); err != nil {
			return nil, err
		}
	}
	for _, st := range cfg.States {
		if err := s.AddState(st.Name, st.Exclusive); err != nil {
			return nil, err
		}
	}
	for _, rs := range cfg.Rules {
		pattern := Pattern{Expr: rs.Pattern, Literal: rs.Literal, IgnoreCase: rs.IgnoreCase}
		action := actions[rs.Action]
		if _, err := s.AddStateRule(rs.States, pattern, action); err != nil {
			return nil, err
		}
	}
	return s, nil
}
