package flex

import (
	"regexp"
	"strings"
)

// compiledMatcher reports the longest substring beginning exactly at a
// given offset that matches, honoring ^/$ as explicit boundary checks
// rather than delegating to the regexp engine's own anchors.
type compiledMatcher struct {
	re *regexp.Regexp
}

// matchAt returns the raw matched substring starting exactly at index, or
// ok=false if hasBOL/hasEOL aren't satisfied or nothing matches there.
func (m *compiledMatcher) matchAt(source string, index int, hasBOL, hasEOL bool) (raw string, ok bool) {
	if hasBOL && !(index == 0 || source[index-1] == '\n') {
		return "", false
	}
	loc := m.re.FindStringIndex(source[index:])
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	end := index + loc[1]
	if hasEOL && !(end == len(source) || source[end] == '\n') {
		return "", false
	}
	return source[index:end], true
}

var defRefRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_-]*)\}`)

// expandDefinitions substitutes every {name} occurrence in src with
// (?:<definition>); the lookup is case-insensitive on name. An undefined
// name is left verbatim — caller responsibility.
func expandDefinitions(src string, defsLower map[string]string) string {
	return defRefRe.ReplaceAllStringFunc(src, func(m string) string {
		name := m[1 : len(m)-1]
		if def, ok := defsLower[lowerASCII(name)]; ok {
			return "(?:" + def + ")"
		}
		return m
	})
}

// compilePattern implements the Pattern Compiler. pos is the scanner's
// current cursor position, attached to any InvalidPattern error this
// produces — meaningful when a rule is added after a source is already
// installed (a live pattern recompile), and simply the start-of-input
// position (1:1) otherwise.
func compilePattern(p Pattern, globalIgnoreCase bool, defs, defsLower map[string]string, pos Position) (m *compiledMatcher, hasBOL, hasEOL bool, fixedWidth int, err error) {
	fixedWidth = -1

	if p.Expr == "" {
		return nil, false, false, -1, emptyPatternf("pattern source")
	}

	var body string
	if p.Literal {
		body = regexp.QuoteMeta(p.Expr)
		fixedWidth = len(p.Expr)
	} else {
		body = expandDefinitions(p.Expr, defsLower)
		if strings.HasPrefix(body, "^") {
			hasBOL = true
			body = body[1:]
		}
		if strings.HasSuffix(body, "$") {
			hasEOL = true
			body = body[:len(body)-1]
		}
	}

	ignoreCase := globalIgnoreCase || p.IgnoreCase
	anchored := "^(?:" + body + ")"
	if ignoreCase {
		anchored = "^(?i:" + body + ")"
	}

	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, false, false, -1, invalidPatternAtf(pos, "%q: %s", p.Expr, err)
	}
	re.Longest()
	return &compiledMatcher{re: re}, hasBOL, hasEOL, fixedWidth, nil
}
