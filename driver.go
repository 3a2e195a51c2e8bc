package flex

import "unicode/utf8"

// ScanOne runs a single pass of the scan driver. It returns
// (nil, nil) when an action consumed input but produced no token — Lex
// loops on that case — a non-nil Token (possibly EOF) when one is ready,
// or a non-nil error if the active Action returned one.
//
// A rule matching a zero-length substring is permitted; if its Action
// doesn't advance the cursor itself (for example with Input), the same rule
// will match again next pass. That's a known flex hazard — documented
// here, not guarded against.
func (s *Scanner) ScanOne() (Token, error) {
	if s.terminated {
		return EOF, nil
	}

	wasEOF := s.index >= len(s.source)
	sel, matched := s.selectRule()

	if matched && s.debugEnabled {
		s.traceSink(TraceRecord{
			State:   s.state,
			Pattern: sel.rule.pattern.Expr,
			Matched: sel.raw,
		})
	}
	if matched {
		s.lastRuleIndex = sel.rule.index
	}

	if s.readMore {
		s.readMore = false
	} else {
		s.text = ""
		s.tokenStart = s.index
	}

	if !matched {
		if !wasEOF {
			r, size := utf8.DecodeRuneInString(s.source[s.index:])
			if r == utf8.RuneError && size == 0 {
				size = 1
			}
			ch := s.source[s.index : s.index+size]
			s.text += ch
			s.index += size
			s.pos = advancePosition(s.pos, ch)
			s.echoSink(s.text)
			return nil, nil
		}
		s.text = ""
		return s.Terminate(), nil
	}

	s.text += sel.raw
	s.index = s.tokenStart + len(s.text)
	s.pos = advancePosition(s.pos, sel.raw)

	rejectedBefore := len(s.rejected)
	action := sel.rule.action
	var (
		tok Token
		err error
	)
	if action != nil {
		tok, err = action(s)
	}
	if err != nil {
		return nil, err
	}

	if len(s.rejected) > rejectedBefore {
		return nil, nil
	}
	s.rejected = map[int]struct{}{}

	if wasEOF {
		if s.index < len(s.source) {
			return tok, nil
		}
		return s.Terminate(), nil
	}
	return tok, nil
}

// Lex drives ScanOne until it yields a non-nil result (a real token or
// EOF).
func (s *Scanner) Lex() (Token, error) {
	for {
		tok, err := s.ScanOne()
		if err != nil {
			return nil, err
		}
		if tok != nil {
			return tok, nil
		}
	}
}

// LexAll drives Lex until EOF, returning every produced token in order.
func (s *Scanner) LexAll() ([]Token, error) {
	var toks []Token
	for {
		tok, err := s.Lex()
		if err != nil {
			return toks, err
		}
		if tok == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}
