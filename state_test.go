package flex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddStateRejectsReservedAny(t *testing.T) {
	s := New()
	err := s.AddState(STATE_ANY, false)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestAddStateRejectsInvalidName(t *testing.T) {
	s := New()
	err := s.AddState("1bad", false)
	require.ErrorIs(t, err, ErrInvalidName)
}

func TestAddStateIsIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.AddState("COMMENT", false))
	require.NoError(t, s.AddState("COMMENT", true))
	require.Len(t, s.stateOrder, 2) // INITIAL + COMMENT, not duplicated
}

func TestResolveStateSpecAbsentMeansInclusiveStates(t *testing.T) {
	s := New()
	require.NoError(t, s.AddState("COMMENT", true))
	out, err := s.resolveStateSpec(nil)
	require.NoError(t, err)
	require.Equal(t, []string{STATE_INITIAL}, out)
}

func TestResolveStateSpecWildcardMeansEveryState(t *testing.T) {
	s := New()
	require.NoError(t, s.AddState("COMMENT", true))
	out, err := s.resolveStateSpec([]string{STATE_ANY})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{STATE_INITIAL, "COMMENT"}, out)
}

func TestResolveStateSpecExplicitListValidatesMembership(t *testing.T) {
	s := New()
	_, err := s.resolveStateSpec([]string{"NOPE"})
	require.ErrorIs(t, err, ErrUnknownState)
}

func TestResolveStateSpecExplicitListDedupes(t *testing.T) {
	s := New()
	out, err := s.resolveStateSpec([]string{STATE_INITIAL, STATE_INITIAL})
	require.NoError(t, err)
	require.Equal(t, []string{STATE_INITIAL}, out)
}

func TestResolveStateSpecEmptyExplicitListErrors(t *testing.T) {
	s := New()
	_, err := s.resolveStateSpec([]string{})
	require.ErrorIs(t, err, ErrEmptyStateSet)
}

func TestAddStateDoesNotBackfillEarlierRules(t *testing.T) {
	s := New()
	_, err := s.AddRule(Lit("x"), nil) // registers against INITIAL only, absent spec
	require.NoError(t, err)
	require.NoError(t, s.AddState("COMMENT", false))

	// The rule added before COMMENT existed must not have been retrofitted.
	require.Len(t, s.rules["COMMENT"], 0)
	require.Len(t, s.rules[STATE_INITIAL], 1)
}
