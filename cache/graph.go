// Package cache - construction and lookup of the sparse feedback graph.
//
// A full pairwise feedback table costs O(N²) memory and is infeasible for
// large dictionaries. The sparse graph bounds memory at O(N·K): for every
// word it precomputes the self-edge plus up to K−1 deterministically
// sampled neighbors. Absent edges fall back to direct evaluation - a cold
// miss is pure computation, never an error, and nothing is written back,
// preserving the memory bound.
package cache

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/internal/seedrand"
)

// Edge is one precomputed (neighbor → pattern code) entry.
type Edge struct {
	// To is the neighbor's index in the canonical word list.
	To int

	// Code is the packed feedback pattern of (word, neighbor).
	Code feedback.Code
}

// Graph is the bounded precomputed feedback lookup. It is immutable after
// Build/Restore and therefore safe to share by reference across
// concurrently running, independent search instances.
type Graph struct {
	words    []string
	index    map[string]int
	length   int
	maxEdges int
	seed     int64
	edges    [][]Edge // per word, sorted by To; always holds the self-edge
}

// Build constructs the sparse graph for the given canonical word list.
// For every word it includes the self-edge (all-CORRECT), then samples up
// to MaxEdges−1 other words with a seeded generator and precomputes their
// feedback. The same (words, MaxEdges, Seed) triple yields a byte-identical
// graph across runs and machines, which reproducible benchmarking relies on.
//
// Complexity: O(N·K·length) time, O(N·K) space.
func Build(list []string, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := newShell(list, o.MaxEdges, o.Seed)
	if err != nil {
		return nil, err
	}

	var (
		n   = len(g.words)
		rng = seedrand.FromSeed(o.Seed)
	)
	g.edges = make([][]Edge, n)
	for i := 0; i < n; i++ {
		need := o.MaxEdges - 1
		if need > n-1 {
			need = n - 1
		}

		targets := make([]int, 0, need+1)
		targets = append(targets, i) // self-edge, always
		if need == n-1 {
			// Cap covers the whole dictionary: take every other word.
			for j := 0; j < n; j++ {
				if j != i {
					targets = append(targets, j)
				}
			}
		} else if need > 0 {
			picked := make(map[int]struct{}, need)
			for len(picked) < need {
				j := rng.Intn(n)
				if j == i {
					continue
				}
				if _, dup := picked[j]; dup {
					continue
				}
				picked[j] = struct{}{}
				targets = append(targets, j)
			}
		}
		sort.Ints(targets)

		row := make([]Edge, len(targets))
		for e, j := range targets {
			p, perr := feedback.Evaluate(g.words[i], g.words[j])
			if perr != nil {
				// Unreachable after the uniform-length check above.
				return nil, perr
			}
			row[e] = Edge{To: j, Code: p.Code()}
		}
		g.edges[i] = row
	}

	return g, nil
}

// Restore rebuilds a Graph from persisted edge lists without re-evaluating
// feedback. Rows must be sorted by To, reference valid indices, and carry
// the self-edge - the persistence layer validates payload integrity before
// calling this, and Restore re-checks the shape.
func Restore(list []string, maxEdges int, seed int64, edges [][]Edge) (*Graph, error) {
	if maxEdges <= 0 {
		return nil, fmt.Errorf("%w: MaxEdges must be positive (%d)", ErrOptionViolation, maxEdges)
	}
	g, err := newShell(list, maxEdges, seed)
	if err != nil {
		return nil, err
	}
	if len(edges) != len(g.words) {
		return nil, fmt.Errorf("%w: %d rows for %d words", ErrRestoreShape, len(edges), len(g.words))
	}

	numPatterns := feedback.Code(feedback.NumPatterns(g.length))
	for i, row := range edges {
		if len(row) == 0 || len(row) > maxEdges {
			return nil, fmt.Errorf("%w: row %d has %d edges (cap %d)", ErrRestoreShape, i, len(row), maxEdges)
		}
		self := false
		for e, edge := range row {
			if edge.To < 0 || edge.To >= len(g.words) || edge.Code >= numPatterns {
				return nil, fmt.Errorf("%w: row %d entry %d out of range", ErrRestoreShape, i, e)
			}
			if e > 0 && row[e-1].To >= edge.To {
				return nil, fmt.Errorf("%w: row %d not strictly sorted", ErrRestoreShape, i)
			}
			if edge.To == i {
				self = true
			}
		}
		if !self {
			return nil, fmt.Errorf("%w: row %d misses its self-edge", ErrRestoreShape, i)
		}
	}
	g.edges = edges

	return g, nil
}

// newShell validates the word list and prepares the shared Graph fields.
func newShell(list []string, maxEdges int, seed int64) (*Graph, error) {
	if len(list) == 0 {
		return nil, ErrNoWords
	}
	owned := make([]string, len(list))
	copy(owned, list)
	g := &Graph{
		words:    owned,
		index:    make(map[string]int, len(list)),
		length:   len(list[0]),
		maxEdges: maxEdges,
		seed:     seed,
	}
	for i, w := range list {
		if len(w) != g.length {
			return nil, fmt.Errorf("%w: %q vs length %d", ErrWordLength, w, g.length)
		}
		if _, dup := g.index[w]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
		g.index[w] = i
	}

	return g, nil
}

// Get returns the feedback pattern for (guess, target): the cached pattern
// when the edge exists, otherwise a direct evaluation. A cold miss is not
// an error and is never written back.
//
// Complexity: O(log K) on a hit, O(length) on a miss.
func (g *Graph) Get(guess, target string) (feedback.Pattern, error) {
	if c, ok := g.cachedCode(guess, target); ok {
		return feedback.FromCode(c, g.length)
	}

	return feedback.Evaluate(guess, target)
}

// GetCode is Get without the pattern materialization; the hot search loop
// compares packed codes only.
func (g *Graph) GetCode(guess, target string) (feedback.Code, error) {
	if c, ok := g.cachedCode(guess, target); ok {
		return c, nil
	}
	p, err := feedback.Evaluate(guess, target)
	if err != nil {
		return 0, err
	}

	return p.Code(), nil
}

// cachedCode performs the sparse lookup: index both words, then binary
// search the guess's edge row.
func (g *Graph) cachedCode(guess, target string) (feedback.Code, bool) {
	gi, ok := g.index[guess]
	if !ok {
		return 0, false
	}
	ti, ok := g.index[target]
	if !ok {
		return 0, false
	}

	row := g.edges[gi]
	lo, hi := 0, len(row)
	for lo < hi {
		mid := (lo + hi) / 2
		if row[mid].To < ti {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(row) && row[lo].To == ti {
		return row[lo].Code, true
	}

	return 0, false
}

// Len returns the number of words in the graph.
func (g *Graph) Len() int { return len(g.words) }

// WordLength returns the uniform word length.
func (g *Graph) WordLength() int { return g.length }

// MaxEdges returns the configured per-word edge cap K.
func (g *Graph) MaxEdges() int { return g.maxEdges }

// Seed returns the sampling seed the graph was built with.
func (g *Graph) Seed() int64 { return g.seed }

// Word returns the word at index i of the canonical list.
func (g *Graph) Word(i int) string { return g.words[i] }

// Words returns a copy of the canonical word list.
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// Edges returns a copy of word i's precomputed edge row, sorted by To.
// The persistence layer serializes rows through this accessor.
func (g *Graph) Edges(i int) []Edge {
	out := make([]Edge, len(g.edges[i]))
	copy(out, g.edges[i])

	return out
}

// EdgeTotal returns the total number of precomputed edges, bounded by N·K.
func (g *Graph) EdgeTotal() int {
	total := 0
	for _, row := range g.edges {
		total += len(row)
	}

	return total
}
