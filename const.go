package flex

// EOF is the reserved action-return value signaling end of input. Flex
// tradition returns 0 from yylex at end of input; callers must not produce
// this value as a genuine token.
const EOF = 0

// STATE_INITIAL is the name of the start condition every Scanner begins in.
const STATE_INITIAL = "INITIAL" // nolint: golint

// STATE_ANY is the pseudo-state name expanding, at registration time, to
// every currently-registered state (inclusive and exclusive alike).
const STATE_ANY = "*" // nolint: golint

// RULE_EOF is the pattern sentinel accepted wherever an ordinary expression
// is expected, marking a rule that only fires once the cursor reaches the
// end of the input.
const RULE_EOF = "<<EOF>>" // nolint: golint
