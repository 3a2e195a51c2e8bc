// Command flexdemo drives a flex.Scanner built from a TOML grammar file
// against an input file, printing each produced token with repr.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"github.com/alecthomas/flex"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Grammar string `arg:"" help:"Path to a TOML grammar file (see flex.LoadConfig)." type:"existingfile"`
		Input   string `arg:"" help:"Path to the input file to scan." type:"existingfile"`
		Debug   bool   `help:"Enable rule-selection tracing to stderr."`
	}
)

// echoAction implements the rule action named "echo" in a grammar file: it
// echoes the matched text and discards it as a token.
func echoAction(s *flex.Scanner) (flex.Token, error) {
	s.Echo()
	return nil, nil
}

// tokenAction implements the rule action named "token": it yields the
// matched text as the token value.
func tokenAction(s *flex.Scanner) (flex.Token, error) {
	return s.Text(), nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line driver for flex grammars.`),
		kong.Vars{"version": version},
	)

	grammar, err := os.ReadFile(cli.Grammar)
	kctx.FatalIfErrorf(err)
	input, err := os.ReadFile(cli.Input)
	kctx.FatalIfErrorf(err)

	scanner, err := flex.LoadConfig(grammar, map[string]flex.Action{
		"echo":  echoAction,
		"token": tokenAction,
	})
	kctx.FatalIfErrorf(err)

	scanner.SetDebugEnabled(cli.Debug)
	scanner.SetEchoSink(flex.EchoToWriter(os.Stdout))
	scanner.SetTraceSink(flex.ReprTraceSink(os.Stderr))
	scanner.SetSource(string(input))

	tokens, err := scanner.LexAll()
	kctx.FatalIfErrorf(err)

	for _, tok := range tokens {
		fmt.Println(repr.String(tok))
	}
}
