package flex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position identifies a point in the scanner's source. It never influences
// match selection or state — but every real flex program relies on
// yylineno, so it's tracked here and exposed to actions as supplementary
// instrumentation.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Position returns the current cursor position.
func (s *Scanner) Position() Position {
	return s.pos
}

// advancePosition folds a just-consumed span into the running line/column
// count. Called once per echoed character, once per matched rule, and by
// Input; Reject and Less recompute the position from the start of the
// source after rewinding the cursor.
func advancePosition(pos Position, span string) Position {
	pos.Offset += len(span)
	lines := strings.Count(span, "\n")
	if lines == 0 {
		pos.Column += utf8.RuneCountInString(span)
		return pos
	}
	pos.Line += lines
	last := strings.LastIndex(span, "\n")
	pos.Column = utf8.RuneCountInString(span[last+1:]) + 1
	return pos
}
