// Package search - admissible heuristic models for A*.
//
// Only admissible heuristics are exposed: each guess distinguishes at most
// 3^length outcome buckets, so resolving a pool of m candidates needs at
// least ceil(log2(m)) further guesses in the best case, and the estimates
// below never exceed that lower bound. Values are always nonnegative.
package search

import (
	"fmt"
	"math"
)

// Heuristic selects an estimate model from the closed enumeration.
type Heuristic uint8

const (
	// HeuristicNone disables the estimate (A* degenerates to UCS).
	HeuristicNone Heuristic = iota
	// HeuristicLog2 estimates log2 of the surviving candidate count.
	HeuristicLog2
	// HeuristicWorstPartitionLog2 estimates log2 of the largest
	// feedback-induced partition, the same bound applied to the worst
	// bucket the guess can leave behind.
	HeuristicWorstPartitionLog2
)

// String returns the canonical configuration tag.
func (h Heuristic) String() string {
	switch h {
	case HeuristicNone:
		return "none"
	case HeuristicLog2:
		return "log2"
	case HeuristicWorstPartitionLog2:
		return "worst-partition-log2"
	default:
		return fmt.Sprintf("heuristic(%d)", uint8(h))
	}
}

// ParseHeuristic maps a tag string onto the closed enumeration.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "none", "":
		return HeuristicNone, nil
	case "log2":
		return HeuristicLog2, nil
	case "worst-partition-log2":
		return HeuristicWorstPartitionLog2, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

func (h Heuristic) valid() bool { return h <= HeuristicWorstPartitionLog2 }

// estimate dispatches the closed enumeration; results are ≥ 0.
//
// Complexity: O(len(parts)) for the worst-partition model, O(1) otherwise.
func estimate(h Heuristic, after int, parts []int) float64 {
	switch h {
	case HeuristicLog2:
		if after <= 1 {
			return 0
		}

		return math.Log2(float64(after))

	case HeuristicWorstPartitionLog2:
		m := maxPartition(parts)
		if m <= 1 {
			return 0
		}

		return math.Log2(float64(m))

	default: // HeuristicNone
		return 0
	}
}
