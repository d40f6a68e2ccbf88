// Package cache - options and error definitions for the sparse feedback graph.
package cache

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and restoration.
var (
	// ErrNoWords is returned when Build receives an empty word list.
	ErrNoWords = errors.New("cache: empty word list")

	// ErrWordLength is returned when the word list mixes lengths.
	ErrWordLength = errors.New("cache: dictionary words must share one length")

	// ErrDuplicateWord is returned when the word list repeats a word.
	ErrDuplicateWord = errors.New("cache: duplicate word in dictionary")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("cache: invalid option supplied")

	// ErrRestoreShape is returned when persisted edge lists do not match
	// the word list they are restored against.
	ErrRestoreShape = errors.New("cache: malformed edge lists")
)

// DefaultMaxEdges is the default per-word edge cap. Source revisions
// disagree on the cap (100 vs 200); it is a configuration value here,
// with 100 as the conservative default.
const DefaultMaxEdges = 100

// Option configures graph construction via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Build is invoked.
type Option func(*Options)

// Options holds the sparse-graph construction parameters.
type Options struct {
	// MaxEdges caps the precomputed edges per word (self-edge included).
	MaxEdges int

	// Seed drives the deterministic neighbor sampling. Seed 0 means
	// "default seed", never "time-based": the same seed produces an
	// identical graph on every run and machine.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the construction defaults: DefaultMaxEdges edges
// per word and the default deterministic seed.
func DefaultOptions() Options {
	return Options{
		MaxEdges: DefaultMaxEdges,
		Seed:     0,
		err:      nil,
	}
}

// WithMaxEdges caps the number of precomputed edges per word, self-edge
// included. K must be positive.
func WithMaxEdges(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: MaxEdges must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxEdges = k
	}
}

// WithSeed fixes the sampling seed. Zero selects the stable default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}
