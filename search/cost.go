// Package search - pluggable step-cost models.
//
// A cost function maps partition statistics of one guess to a strictly
// positive step cost. Strict positivity is load-bearing: UCS and A* rely
// on monotonically growing g along every path for their ordering
// guarantees, and a zero or negative step would break them.
//
// Inputs, for a guess taken from a state with `before` candidates:
//   - after: candidates surviving the observed feedback;
//   - parts: sizes of all feedback-induced partitions of the `before`
//     set (grouping candidates by the pattern the guess would induce
//     against each); the sizes sum to before.
package search

import (
	"fmt"
	"math"
)

// Cost selects a step-cost model from the closed enumeration.
type Cost uint8

const (
	// CostConstant charges 1 per guess; UCS degenerates to BFS.
	CostConstant Cost = iota
	// CostReduction charges 1 + after/before, rewarding pool shrinkage.
	CostReduction
	// CostWorstPartition charges 1 + max(parts)/before, penalizing guesses
	// that risk a large remaining bucket.
	CostWorstPartition
	// CostEntropy charges 2 − H(parts)/log2(before), with H the Shannon
	// entropy of the partition-size distribution in bits: maximally
	// informative guesses approach cost 1, uninformative ones cost 2.
	CostEntropy
)

// String returns the canonical configuration tag.
func (c Cost) String() string {
	switch c {
	case CostConstant:
		return "constant"
	case CostReduction:
		return "reduction"
	case CostWorstPartition:
		return "worst-partition"
	case CostEntropy:
		return "entropy"
	default:
		return fmt.Sprintf("cost(%d)", uint8(c))
	}
}

// ParseCost maps a tag string onto the closed enumeration.
func ParseCost(s string) (Cost, error) {
	switch s {
	case "constant":
		return CostConstant, nil
	case "reduction":
		return CostReduction, nil
	case "worst-partition":
		return CostWorstPartition, nil
	case "entropy":
		return CostEntropy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCost, s)
	}
}

func (c Cost) valid() bool { return c <= CostEntropy }

// stepCost dispatches the closed enumeration. All branches stay within
// [1, 2], hence strictly positive.
//
// Complexity: O(len(parts)).
func stepCost(c Cost, before, after int, parts []int) float64 {
	switch c {
	case CostReduction:
		if before == 0 {
			return 1
		}

		return 1 + float64(after)/float64(before)

	case CostWorstPartition:
		if before == 0 {
			return 1
		}

		return 1 + float64(maxPartition(parts))/float64(before)

	case CostEntropy:
		hMax := math.Log2(float64(before))
		if before <= 1 || hMax <= 0 {
			// A singleton pool carries no information to gain.
			return 1
		}

		return 2 - entropyBits(parts)/hMax

	default: // CostConstant
		return 1
	}
}

// entropyBits returns the Shannon entropy, in bits, of the partition-size
// distribution. Callers pass sizes in a deterministic (sorted) order so
// the floating-point sum is identical across runs.
func entropyBits(parts []int) float64 {
	total := 0
	for _, sz := range parts {
		total += sz
	}
	if total == 0 {
		return 0
	}

	var h float64
	for _, sz := range parts {
		if sz == 0 {
			continue
		}
		p := float64(sz) / float64(total)
		h -= p * math.Log2(p)
	}

	return h
}

// maxPartition returns the largest partition size, 0 for no partitions.
func maxPartition(parts []int) int {
	m := 0
	for _, sz := range parts {
		if sz > m {
			m = sz
		}
	}

	return m
}
