package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCost_RoundTrip(t *testing.T) {
	for _, c := range []Cost{CostConstant, CostReduction, CostWorstPartition, CostEntropy} {
		got, err := ParseCost(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCost("bogus")
	assert.ErrorIs(t, err, ErrUnknownCost)
}

func TestStepCost_Formulas(t *testing.T) {
	// A pool of 4 split into partitions 1/1/2 by some guess, with 2
	// candidates surviving the observed branch.
	parts := []int{1, 1, 2}

	assert.Equal(t, 1.0, stepCost(CostConstant, 4, 2, parts))
	assert.InDelta(t, 1.5, stepCost(CostReduction, 4, 2, parts), 1e-12)
	assert.InDelta(t, 1.5, stepCost(CostWorstPartition, 4, 2, parts), 1e-12)
	// H(1/4, 1/4, 1/2) = 1.5 bits, log2(4) = 2.
	assert.InDelta(t, 1.25, stepCost(CostEntropy, 4, 2, parts), 1e-12)
}

// TestStepCost_StrictlyPositive sweeps the models over pool shapes: every
// step must land in [1, 2] so accumulated cost grows along every path.
func TestStepCost_StrictlyPositive(t *testing.T) {
	shapes := []struct {
		before int
		after  int
		parts  []int
	}{
		{1, 1, []int{1}},
		{2, 1, []int{1, 1}},
		{2, 2, []int{2}},
		{5, 5, []int{5}},
		{5, 1, []int{1, 1, 1, 1, 1}},
		{100, 37, []int{1, 20, 37, 42}},
		{0, 0, nil},
	}
	for _, c := range []Cost{CostConstant, CostReduction, CostWorstPartition, CostEntropy} {
		for _, s := range shapes {
			got := stepCost(c, s.before, s.after, s.parts)
			assert.GreaterOrEqual(t, got, 1.0, "%s before=%d", c, s.before)
			assert.LessOrEqual(t, got, 2.0, "%s before=%d", c, s.before)
		}
	}
}

func TestEntropyBits(t *testing.T) {
	assert.Zero(t, entropyBits(nil))
	assert.Zero(t, entropyBits([]int{7}))
	assert.InDelta(t, 1.0, entropyBits([]int{3, 3}), 1e-12)
	assert.InDelta(t, 1.5, entropyBits([]int{1, 1, 2}), 1e-12)
	assert.InDelta(t, 2.0, entropyBits([]int{1, 1, 1, 1}), 1e-12)
}

// Uninformative guesses (one partition) must cost strictly more than
// maximally informative ones (all singletons) under the entropy model.
func TestStepCost_EntropyOrdersInformativeness(t *testing.T) {
	uninformative := stepCost(CostEntropy, 8, 8, []int{8})
	informative := stepCost(CostEntropy, 8, 1, []int{1, 1, 1, 1, 1, 1, 1, 1})

	assert.InDelta(t, 2.0, uninformative, 1e-12)
	assert.InDelta(t, 1.0, informative, 1e-12)
	assert.True(t, informative < uninformative)
}

func TestMaxPartition(t *testing.T) {
	assert.Zero(t, maxPartition(nil))
	assert.Equal(t, 9, maxPartition([]int{2, 9, 4}))
}

func TestEntropyBits_OrderInsensitiveValue(t *testing.T) {
	a := entropyBits([]int{1, 2, 3, 4})
	b := entropyBits([]int{4, 3, 2, 1})
	assert.True(t, math.Abs(a-b) < 1e-12)
}
