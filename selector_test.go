package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectRulePrefersLongestMatch(t *testing.T) {
	s := New()
	_, err := s.AddRule(Lit("a"), nil)
	require.NoError(t, err)
	_, err = s.AddRule(Lit("ab"), nil)
	require.NoError(t, err)
	s.SetSource("abc")

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.Equal(t, "ab", sel.raw)
}

func TestSelectRuleTieBreaksOnRegistrationOrder(t *testing.T) {
	s := New()
	first, err := s.AddRule(Lit("ab"), nil)
	require.NoError(t, err)
	_, err = s.AddRule(Re(`a.`), nil)
	require.NoError(t, err)
	s.SetSource("ab")

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.Equal(t, first.Index(), sel.rule.Index())
}

func TestSelectRuleAnchorBonusBreaksTie(t *testing.T) {
	s := New()
	_, err := s.AddRule(Re(`a`), nil)
	require.NoError(t, err)
	anchored, err := s.AddRule(Re(`a$`), nil)
	require.NoError(t, err)
	s.SetSource("a")

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.Equal(t, anchored.Index(), sel.rule.Index(), "the $-anchored rule of equal raw length must win")
}

func TestSelectRuleSkipsRejectedIndices(t *testing.T) {
	s := New()
	long, err := s.AddRule(Lit("ab"), nil)
	require.NoError(t, err)
	short, err := s.AddRule(Lit("a"), nil)
	require.NoError(t, err)
	s.SetSource("ab")
	s.rejected[long.Index()] = struct{}{}

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.Equal(t, short.Index(), sel.rule.Index())
}

func TestSelectRuleAtEOFOnlyConsidersEOFRules(t *testing.T) {
	s := New()
	_, err := s.AddRule(Lit("a"), nil)
	require.NoError(t, err)
	_, err = s.AddRule(Pattern{Expr: RULE_EOF}, nil)
	require.NoError(t, err)
	s.SetSource("")

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.True(t, sel.rule.isEOF)
	require.Equal(t, "", sel.raw)
}

func TestSelectRuleFixedWidthPruning(t *testing.T) {
	s := New()
	_, err := s.AddRule(Lit("ab"), nil)
	require.NoError(t, err)
	// A shorter literal registered after a longer one can never win outright,
	// but must still be skippable without breaking the longer match's result.
	_, err = s.AddRule(Lit("a"), nil)
	require.NoError(t, err)
	s.SetSource("ab")

	sel, ok := s.selectRule()
	require.True(t, ok)
	require.Equal(t, "ab", sel.raw)
}
