// Package search - the named configuration catalog.
package search

import "fmt"

// Preset names one behaviorally distinct (algorithm, cost, heuristic)
// triple. Apply one via WithPreset.
type Preset struct {
	// Name is the stable lookup key, e.g. "astar-entropy-log2".
	Name string

	// Algorithm, Cost and Heuristic form the configuration triple.
	Algorithm Algorithm
	Cost      Cost
	Heuristic Heuristic
}

// presets lists every behaviorally distinct configuration; order is
// stable and part of the package contract. BFS and DFS ignore the cost
// model, UCS ignores the heuristic, so only the distinct combinations
// are named.
var presets = []Preset{
	{Name: "bfs", Algorithm: BFS, Cost: CostConstant, Heuristic: HeuristicNone},
	{Name: "dfs", Algorithm: DFS, Cost: CostConstant, Heuristic: HeuristicNone},

	{Name: "ucs-constant", Algorithm: UCS, Cost: CostConstant, Heuristic: HeuristicNone},
	{Name: "ucs-reduction", Algorithm: UCS, Cost: CostReduction, Heuristic: HeuristicNone},
	{Name: "ucs-worst-partition", Algorithm: UCS, Cost: CostWorstPartition, Heuristic: HeuristicNone},
	{Name: "ucs-entropy", Algorithm: UCS, Cost: CostEntropy, Heuristic: HeuristicNone},

	{Name: "astar-constant-log2", Algorithm: AStar, Cost: CostConstant, Heuristic: HeuristicLog2},
	{Name: "astar-reduction-log2", Algorithm: AStar, Cost: CostReduction, Heuristic: HeuristicLog2},
	{Name: "astar-worst-partition-log2", Algorithm: AStar, Cost: CostWorstPartition, Heuristic: HeuristicLog2},
	{Name: "astar-entropy-log2", Algorithm: AStar, Cost: CostEntropy, Heuristic: HeuristicLog2},

	{Name: "astar-constant-wp-log2", Algorithm: AStar, Cost: CostConstant, Heuristic: HeuristicWorstPartitionLog2},
	{Name: "astar-reduction-wp-log2", Algorithm: AStar, Cost: CostReduction, Heuristic: HeuristicWorstPartitionLog2},
	{Name: "astar-worst-partition-wp-log2", Algorithm: AStar, Cost: CostWorstPartition, Heuristic: HeuristicWorstPartitionLog2},
	{Name: "astar-entropy-wp-log2", Algorithm: AStar, Cost: CostEntropy, Heuristic: HeuristicWorstPartitionLog2},
}

// Presets returns a copy of the full catalog in its stable order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)

	return out
}

// LookupPreset resolves a catalog entry by name.
//
// Errors: ErrUnknownPreset.
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
