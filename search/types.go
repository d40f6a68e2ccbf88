// Package search - shared types and error definitions for the solve engine.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexipath/feedback"
)

// Sentinel errors for engine construction and solve requests.
var (
	// ErrNilCache is returned when the engine is built without a feedback graph.
	ErrNilCache = errors.New("search: feedback cache is nil")

	// ErrEmptyDictionary is returned for an empty candidate dictionary.
	ErrEmptyDictionary = errors.New("search: empty dictionary")

	// ErrInvalidDictionary is returned for mixed-length or duplicated words;
	// the ingestion boundary should have rejected these already.
	ErrInvalidDictionary = errors.New("search: invalid dictionary")

	// ErrUnknownTarget is returned when the hidden target is not a
	// dictionary word.
	ErrUnknownTarget = errors.New("search: target not in dictionary")

	// ErrUnsupportedAlgorithm is returned for an algorithm tag outside the
	// closed enumeration.
	ErrUnsupportedAlgorithm = errors.New("search: unsupported algorithm")

	// ErrUnknownCost is returned for a cost tag outside the closed enumeration.
	ErrUnknownCost = errors.New("search: unknown cost function")

	// ErrUnknownHeuristic is returned for a heuristic tag outside the
	// closed enumeration.
	ErrUnknownHeuristic = errors.New("search: unknown heuristic function")

	// ErrUnknownPreset is returned by LookupPreset for an unlisted name.
	ErrUnknownPreset = errors.New("search: unknown preset")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Algorithm selects the frontier discipline of the expansion loop.
// The enumeration is closed: every solver is one generic engine
// parameterized by this tag, never a subclass.
type Algorithm uint8

const (
	// BFS explores level-order (FIFO frontier): first found is shallowest.
	BFS Algorithm = iota
	// DFS explores depth-first (LIFO frontier).
	DFS
	// UCS orders the frontier by accumulated cost g.
	UCS
	// AStar orders the frontier by g plus an admissible heuristic.
	AStar
)

// String returns the canonical lowercase tag.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case UCS:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps a tag string onto the closed enumeration.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "ucs":
		return UCS, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Observation is one (guess, feedback) step of a solve history.
type Observation struct {
	Guess   string
	Pattern feedback.Pattern
}

// Metrics collects the observability counters updated on every pop/push.
type Metrics struct {
	// NodesExpanded counts states popped and actually expanded
	// (visited-set duplicates are discarded before counting).
	NodesExpanded int

	// NodesGenerated counts children pushed onto the frontier.
	NodesGenerated int

	// MaxFrontier is the peak frontier size observed.
	MaxFrontier int

	// DistinctGuesses counts distinct words tried as guesses.
	DistinctGuesses int
}

// Result is the outcome of one solve run. A search that exhausts its
// frontier or guess budget is a normal unsuccessful Result, not an error,
// so batch evaluation over many targets proceeds uninterrupted.
type Result struct {
	// Target is the hidden word the run searched for.
	Target string

	// Success reports whether the guess sequence reached the target.
	Success bool

	// Guesses is the ordered guess sequence of the winning path
	// (empty when Success is false).
	Guesses []string

	// History pairs each guess with its feedback pattern.
	History []Observation

	// Metrics holds the run's observability counters.
	Metrics Metrics
}
