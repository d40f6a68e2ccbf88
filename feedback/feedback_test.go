package feedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexipath/feedback"
)

// mk builds a Pattern from its compact symbol string ('G', 'Y', '-').
func mk(symbols string) feedback.Pattern {
	p := make(feedback.Pattern, len(symbols))
	for i := 0; i < len(symbols); i++ {
		switch symbols[i] {
		case 'G':
			p[i] = feedback.Correct
		case 'Y':
			p[i] = feedback.Present
		default:
			p[i] = feedback.Absent
		}
	}

	return p
}

func TestEvaluate_SelfIsAllCorrect(t *testing.T) {
	for _, w := range []string{"CRANE", "ALLOY", "GEESE", "AAAAA", "Q"} {
		p, err := feedback.Evaluate(w, w)
		require.NoError(t, err)
		assert.True(t, p.AllCorrect(), "Evaluate(%q, %q) must be all-CORRECT", w, w)
		assert.Equal(t, feedback.AllCorrectCode(len(w)), p.Code())
	}
}

func TestEvaluate_LengthMismatch(t *testing.T) {
	_, err := feedback.Evaluate("CRANE", "CRANES")
	assert.ErrorIs(t, err, feedback.ErrLengthMismatch)
}

// TestEvaluate_DuplicateLetters pins the two-pass accounting on hand-built
// expected patterns, including the mandated ALLOY/LOYAL pair.
func TestEvaluate_DuplicateLetters(t *testing.T) {
	cases := []struct {
		name          string
		guess, secret string
		want          string
	}{
		// Every letter of ALLOY occurs in LOYAL but never in place; the
		// second L of the guess is covered by LOYAL's second L.
		{"alloy-vs-loyal", "ALLOY", "LOYAL", "YYYYY"},
		// One L matches in place (pass 1); the leftover L and one A are
		// claimed in guess order; the trailing A finds an empty pool.
		{"llama-vs-alloy", "LLAMA", "ALLOY", "YGY--"},
		// EDICT holds a single E: the first unmatched E takes it, the
		// later ones must come out Absent, not Present.
		{"geese-vs-edict", "GEESE", "EDICT", "-Y---"},
		{"speed-vs-erase", "SPEED", "ERASE", "Y-YY-"},
		{"erase-vs-speed", "ERASE", "SPEED", "Y--YY"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := feedback.Evaluate(tc.guess, tc.secret)
			require.NoError(t, err)
			assert.Equal(t, mk(tc.want), got)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestEvaluate_Asymmetry demonstrates that the evaluator is not symmetric
// once duplicate letters are involved.
func TestEvaluate_Asymmetry(t *testing.T) {
	ab, err := feedback.Evaluate("SPEED", "ERASE")
	require.NoError(t, err)
	ba, err := feedback.Evaluate("ERASE", "SPEED")
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba)
}

func TestPattern_CodeRoundTrip(t *testing.T) {
	words := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE", "ALLOY", "LOYAL"}
	for _, g := range words {
		for _, s := range words {
			p, err := feedback.Evaluate(g, s)
			require.NoError(t, err)
			back, err := feedback.FromCode(p.Code(), len(g))
			require.NoError(t, err)
			assert.Equal(t, p, back, "round trip for (%s,%s)", g, s)
		}
	}
}

func TestFromCode_OutOfRange(t *testing.T) {
	_, err := feedback.FromCode(feedback.Code(243), 5)
	assert.ErrorIs(t, err, feedback.ErrBadCode)

	// 242 is the all-CORRECT code for length 5.
	p, err := feedback.FromCode(242, 5)
	require.NoError(t, err)
	assert.True(t, p.AllCorrect())
}

func TestNumPatterns(t *testing.T) {
	assert.Equal(t, 1, feedback.NumPatterns(0))
	assert.Equal(t, 3, feedback.NumPatterns(1))
	assert.Equal(t, 243, feedback.NumPatterns(5))
}
