package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/knowledge"
)

var dictionary = []string{
	"CRANE", "TRACE", "SLATE", "STARE", "SHARE",
	"GRACE", "BRACE", "CRATE", "PLANE", "EDICT",
}

// observe evaluates guess against secret and folds the result into k.
func observe(t *testing.T, k *knowledge.Knowledge, guess, secret string) *knowledge.Knowledge {
	t.Helper()
	p, err := feedback.Evaluate(guess, secret)
	require.NoError(t, err)
	next, err := k.Extend(guess, p)
	require.NoError(t, err)

	return next
}

func TestEmpty_BadLength(t *testing.T) {
	_, err := knowledge.Empty(0)
	assert.ErrorIs(t, err, knowledge.ErrBadLength)
	_, err = knowledge.Empty(-3)
	assert.ErrorIs(t, err, knowledge.ErrBadLength)
}

func TestEmpty_Unconstrained(t *testing.T) {
	k, err := knowledge.Empty(5)
	require.NoError(t, err)
	for _, w := range dictionary {
		assert.True(t, k.Consistent(w), "empty knowledge must admit %q", w)
	}
	assert.Equal(t, dictionary, k.Filter(dictionary))
}

func TestExtend_BasicMarks(t *testing.T) {
	k, _ := knowledge.Empty(5)
	// SLATE vs CRANE: S- L- A(pos 2)G T- E(pos 4)G
	k = observe(t, k, "SLATE", "CRANE")

	got, ok := k.Known(2)
	require.True(t, ok)
	assert.Equal(t, byte('A'), got)
	got, ok = k.Known(4)
	require.True(t, ok)
	assert.Equal(t, byte('E'), got)

	assert.True(t, k.Excluded('S'))
	assert.True(t, k.Excluded('L'))
	assert.True(t, k.Excluded('T'))
	assert.Equal(t, 1, k.MinCount('A'))
	assert.Equal(t, 1, k.MinCount('E'))

	assert.True(t, k.Consistent("CRANE"))
	assert.False(t, k.Consistent("TRACE"), "contains excluded T")
	assert.False(t, k.Consistent("SHARE"), "contains excluded S")
}

func TestExtend_PresentExcludesPosition(t *testing.T) {
	k, _ := knowledge.Empty(5)
	// TRACE vs SHARE: A and E correct, R present at position 1.
	k = observe(t, k, "TRACE", "SHARE")

	assert.True(t, k.ExcludedAt(1, 'R'))
	assert.Equal(t, 1, k.MinCount('R'))
	assert.False(t, k.Consistent("CRANE"), "R pinned away from position 1")
	assert.True(t, k.Consistent("SHARE"))
}

// TestExtend_DuplicateAbsentClampsMax covers the mandatory duplicate-letter
// edge case: GEESE against EDICT yields one PRESENT E and two ABSENT E's,
// which must clamp E's maximum to 1 rather than exclude it.
func TestExtend_DuplicateAbsentClampsMax(t *testing.T) {
	k, _ := knowledge.Empty(5)
	k = observe(t, k, "GEESE", "EDICT")

	assert.Equal(t, 1, k.MinCount('E'))
	assert.Equal(t, 1, k.MaxCount('E'))
	assert.False(t, k.Excluded('E'), "E stays playable with exactly one occurrence")
	assert.True(t, k.Excluded('G'))
	assert.True(t, k.Excluded('S'))

	assert.True(t, k.Consistent("EDICT"), "one E, no G/S")
	assert.False(t, k.Consistent("ELDER"), "two E's exceed the clamped maximum")
	assert.False(t, k.Consistent("DITCH"), "zero E's fall below the minimum")
}

// TestFilter_Monotone verifies that each extra observation can only shrink
// the filtered candidate set, for every target in the dictionary.
func TestFilter_Monotone(t *testing.T) {
	guesses := []string{"SLATE", "TRACE", "SHARE", "CRANE"}
	for _, secret := range dictionary {
		k, err := knowledge.Empty(5)
		require.NoError(t, err)
		prev := k.Filter(dictionary)
		for _, g := range guesses {
			k = observe(t, k, g, secret)
			cur := k.Filter(dictionary)
			assert.Subset(t, prev, cur,
				"filter must be monotone for secret=%s after guess=%s", secret, g)
			assert.Contains(t, cur, secret,
				"the secret itself always survives honest feedback")
			prev = cur
		}
	}
}

func TestExtend_KnownPositionNeverExcluded(t *testing.T) {
	k, _ := knowledge.Empty(5)
	// First observation leaves R present-but-misplaced at position 1.
	k = observe(t, k, "TRACE", "SHARE")
	require.True(t, k.ExcludedAt(1, 'R'))

	// A later CORRECT mark at position 3 pins R there; position 1 keeps its
	// exclusion, and position 3 must never hold one for R.
	k = observe(t, k, "STARE", "SHARE")
	got, ok := k.Known(3)
	require.True(t, ok)
	assert.Equal(t, byte('R'), got)
	assert.False(t, k.ExcludedAt(3, 'R'))
	assert.True(t, k.ExcludedAt(1, 'R'))
}

func TestExtend_ObservationShape(t *testing.T) {
	k, _ := knowledge.Empty(5)
	p, err := feedback.Evaluate("CRANE", "CRANE")
	require.NoError(t, err)

	_, err = k.Extend("CRANES", p)
	assert.ErrorIs(t, err, knowledge.ErrObservationShape)
	_, err = k.Extend("CRANE", p[:3])
	assert.ErrorIs(t, err, knowledge.ErrObservationShape)
}

func TestExtend_DoesNotMutateReceiver(t *testing.T) {
	k0, _ := knowledge.Empty(5)
	before := k0.Filter(dictionary)

	_ = observe(t, k0, "SLATE", "CRANE")
	after := k0.Filter(dictionary)
	assert.Equal(t, before, after, "Extend must leave the receiver untouched")
}
