package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const floatGrammar = `
[[definitions]]
name = "DIGIT"
pattern = "[0-9]"

[[rules]]
pattern = "{DIGIT}+\\.{DIGIT}+"
action = "float"

[[rules]]
pattern = "\\s+"
`

func TestLoadConfigBuildsWorkingScanner(t *testing.T) {
	var got []Token
	actions := map[string]Action{
		"float": func(s *Scanner) (Token, error) { return s.Text(), nil },
	}
	s, err := LoadConfig([]byte(floatGrammar), actions)
	require.NoError(t, err)

	s.SetSource("1.2 3.4")
	got, err = s.LexAll()
	require.NoError(t, err)
	require.Equal(t, []Token{"1.2", "3.4"}, got)
}

func TestLoadConfigUnknownActionNameDiscards(t *testing.T) {
	grammar := `
[[rules]]
pattern = "x"
action = "does-not-exist"
`
	s, err := LoadConfig([]byte(grammar), nil)
	require.NoError(t, err)
	s.SetSource("x")

	toks, err := s.LexAll()
	require.NoError(t, err)
	require.Empty(t, toks)
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	_, err := LoadConfig([]byte("not = [valid"), nil)
	require.ErrorIs(t, err, ErrInvalidPattern)
}
