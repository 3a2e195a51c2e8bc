package flex

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
)

// TraceRecord is emitted to the trace sink once per selected rule when
// debugging is enabled.
type TraceRecord struct {
	State   string
	Pattern string
	Matched string
}

// EchoToWriter builds an ECHO sink writing to w. Use EchoToWriter(os.Stdout)
// to get flex's traditional default; the core itself never imports os.
func EchoToWriter(w io.Writer) func(string) {
	return func(s string) {
		fmt.Fprint(w, s)
	}
}

// ReprTraceSink builds a trace sink that pretty-prints each TraceRecord with
// repr, one per line, useful when developing a new grammar interactively.
func ReprTraceSink(w io.Writer) func(TraceRecord) {
	return func(rec TraceRecord) {
		fmt.Fprintln(w, repr.String(rec))
	}
}

func discardEcho(string)       {}
func discardTrace(TraceRecord) {}
