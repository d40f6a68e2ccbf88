// Package search - tunable options for solve runs.
package search

import "fmt"

// Defaults for solve configuration.
const (
	// DefaultMaxBranching caps the guesses tried per expanded state.
	DefaultMaxBranching = 30

	// DefaultGuessBudget is the reference puzzle's attempt limit.
	DefaultGuessBudget = 6
)

// Option configures a solve run via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation (or the
// relevant enum sentinel) when Solve is invoked.
type Option func(*Options)

// Options holds the full solve configuration.
type Options struct {
	// Algorithm selects the frontier discipline.
	Algorithm Algorithm

	// Cost selects the step-cost model (UCS and A*).
	Cost Cost

	// Heuristic selects the estimate model (A* only).
	Heuristic Heuristic

	// MaxBranching caps the guesses tried per expanded state.
	MaxBranching int

	// GuessBudget bounds the history length; reaching it without the
	// target is a normal unsuccessful result.
	GuessBudget int

	// Openers is the fixed set of diverse opening guesses tried at
	// history length 0. Openers absent from the dictionary are skipped at
	// solve time; at least one must remain.
	Openers []string

	// Deadline, when non-nil, is polled between pops; returning true
	// stops the run with a normal unsuccessful result. Omitting it has no
	// effect on search correctness.
	Deadline func() bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the reference configuration: A* with constant
// cost and the log2 heuristic, branching 30, budget 6, curated openers.
func DefaultOptions() Options {
	return Options{
		Algorithm:    AStar,
		Cost:         CostConstant,
		Heuristic:    HeuristicLog2,
		MaxBranching: DefaultMaxBranching,
		GuessBudget:  DefaultGuessBudget,
		Openers:      DefaultOpeners(),
		Deadline:     nil,
		err:          nil,
	}
}

// WithAlgorithm selects the frontier discipline.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a > AStar {
			o.err = fmt.Errorf("%w: %d", ErrUnsupportedAlgorithm, a)
			return
		}
		o.Algorithm = a
	}
}

// WithCost selects the step-cost model.
func WithCost(c Cost) Option {
	return func(o *Options) {
		if !c.valid() {
			o.err = fmt.Errorf("%w: %d", ErrUnknownCost, c)
			return
		}
		o.Cost = c
	}
}

// WithHeuristic selects the estimate model.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if !h.valid() {
			o.err = fmt.Errorf("%w: %d", ErrUnknownHeuristic, h)
			return
		}
		o.Heuristic = h
	}
}

// WithPreset applies a named (algorithm, cost, heuristic) triple.
func WithPreset(p Preset) Option {
	return func(o *Options) {
		o.Algorithm = p.Algorithm
		o.Cost = p.Cost
		o.Heuristic = p.Heuristic
	}
}

// WithMaxBranching caps the guesses tried per state; must be positive.
func WithMaxBranching(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxBranching must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxBranching = n
	}
}

// WithGuessBudget bounds the history length; must be positive.
func WithGuessBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: GuessBudget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.GuessBudget = n
	}
}

// WithOpeners replaces the depth-0 opening guess set; must be non-empty.
func WithOpeners(openers []string) Option {
	return func(o *Options) {
		if len(openers) == 0 {
			o.err = fmt.Errorf("%w: opener set is empty", ErrOptionViolation)
			return
		}
		o.Openers = openers
	}
}

// WithDeadline installs a poll called between pops; returning true stops
// the run with a normal unsuccessful result.
func WithDeadline(expired func() bool) Option {
	return func(o *Options) {
		o.Deadline = expired
	}
}

// validate cross-checks the assembled configuration once, before any
// search work begins.
func (o *Options) validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Algorithm == AStar && o.Heuristic == HeuristicNone {
		return fmt.Errorf("%w: A* requires a heuristic; use UCS for plain cost ordering", ErrOptionViolation)
	}
	if len(o.Openers) == 0 {
		return fmt.Errorf("%w: opener set is empty", ErrOptionViolation)
	}

	return nil
}
