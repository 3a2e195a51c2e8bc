package flex

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, checkable with errors.Is. Configuration errors carry
// no stream position — they happen before any source is set — unlike
// runtime pattern errors, which do (see Position in position.go).
var (
	ErrInvalidName    = errors.New("flex: invalid name")
	ErrInvalidPattern = errors.New("flex: invalid pattern")
	ErrEmptyPattern   = errors.New("flex: empty pattern")
	ErrUnknownState   = errors.New("flex: unknown state")
	ErrEmptyStateSet  = errors.New("flex: empty state set")
	ErrStackUnderflow = errors.New("flex: state stack underflow")
)

func invalidNamef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidName, fmt.Sprintf(format, args...))
}

func invalidPatternf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidPattern, fmt.Sprintf(format, args...))
}

// invalidPatternAtf builds an InvalidPattern error tagged with the
// scanner's cursor position at the time the pattern was compiled, used for
// the live-recompile path (AddRule/AddStateRule called with a source
// already installed).
func invalidPatternAtf(pos Position, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidPattern, pos, fmt.Sprintf(format, args...))
}

func emptyPatternf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrEmptyPattern, fmt.Sprintf(format, args...))
}

func unknownStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnknownState, fmt.Sprintf(format, args...))
}

func emptyStateSetf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrEmptyStateSet, fmt.Sprintf(format, args...))
}
