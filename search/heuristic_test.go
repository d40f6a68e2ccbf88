package search

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/knowledge"
)

func TestParseHeuristic_RoundTrip(t *testing.T) {
	for _, h := range []Heuristic{HeuristicNone, HeuristicLog2, HeuristicWorstPartitionLog2} {
		got, err := ParseHeuristic(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	_, err := ParseHeuristic("bogus")
	assert.ErrorIs(t, err, ErrUnknownHeuristic)
}

func TestEstimate_Formulas(t *testing.T) {
	parts := []int{1, 1, 2}

	assert.Zero(t, estimate(HeuristicNone, 4, parts))
	assert.InDelta(t, 2.0, estimate(HeuristicLog2, 4, parts), 1e-12)
	assert.InDelta(t, 1.0, estimate(HeuristicWorstPartitionLog2, 4, parts), 1e-12)

	// Resolved pools estimate zero further work.
	assert.Zero(t, estimate(HeuristicLog2, 1, []int{1}))
	assert.Zero(t, estimate(HeuristicWorstPartitionLog2, 1, []int{1}))
}

func TestEstimate_Nonnegative(t *testing.T) {
	for _, h := range []Heuristic{HeuristicNone, HeuristicLog2, HeuristicWorstPartitionLog2} {
		for after := 0; after <= 8; after++ {
			assert.GreaterOrEqual(t, estimate(h, after, []int{after}), 0.0)
		}
	}
}

// minGuessesTo brute-forces the fewest guesses that reach target when
// each guess is drawn from the current consistent pool. Guessing a
// non-target word always removes it from the pool, so the recursion
// terminates.
func minGuessesTo(t *testing.T, target string, pool []string, know *knowledge.Knowledge) int {
	t.Helper()
	best := math.MaxInt
	for _, g := range pool {
		if g == target {
			best = 1
			break
		}
		p, err := feedback.Evaluate(g, target)
		require.NoError(t, err)
		next, err := know.Extend(g, p)
		require.NoError(t, err)
		survivors := next.Filter(pool)
		if len(survivors) == 0 {
			continue
		}
		if sub := minGuessesTo(t, target, survivors, next); sub != math.MaxInt && 1+sub < best {
			best = 1 + sub
		}
	}

	return best
}

// TestEstimate_Admissible checks both exposed heuristics against the
// brute-forced optimum on every state reachable by one opening guess:
// the estimate must never exceed the guesses genuinely still needed.
// Step costs are at least 1 under every model, so an estimate bounded by
// the remaining guess count is bounded by the remaining cost too.
func TestEstimate_Admissible(t *testing.T) {
	dict := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}

	for _, target := range dict {
		for _, opener := range dict {
			p, err := feedback.Evaluate(opener, target)
			require.NoError(t, err)
			if p.AllCorrect() {
				continue
			}
			know, err := knowledge.Empty(len(target))
			require.NoError(t, err)
			know, err = know.Extend(opener, p)
			require.NoError(t, err)
			pool := know.Filter(dict)
			require.NotEmpty(t, pool, "%s/%s", opener, target)

			hist := make(map[feedback.Code]int)
			for _, w := range dict {
				wp, werr := feedback.Evaluate(opener, w)
				require.NoError(t, werr)
				hist[wp.Code()]++
			}
			parts := make([]int, 0, len(hist))
			for _, sz := range hist {
				parts = append(parts, sz)
			}
			sort.Ints(parts)

			optimum := float64(minGuessesTo(t, target, pool, know))
			assert.LessOrEqual(t, estimate(HeuristicLog2, len(pool), parts), optimum,
				"log2 overestimates after %s against %s", opener, target)
			assert.LessOrEqual(t, estimate(HeuristicWorstPartitionLog2, len(pool), parts), optimum,
				"worst-partition-log2 overestimates after %s against %s", opener, target)
		}
	}
}
