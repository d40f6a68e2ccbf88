// Package bench - the batch evaluation harness.
package bench

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lexipath/internal/seedrand"
	"github.com/katalvlaran/lexipath/search"
)

// Sentinel errors for harness configuration.
var (
	// ErrNilEngine is returned when Run is given no engine.
	ErrNilEngine = errors.New("bench: engine is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bench: invalid option supplied")
)

// DefaultTargets is the number of hidden words sampled per run.
const DefaultTargets = 20

// targetStream decorrelates target sampling from other consumers of the
// same seed, the cache edge sampler in particular.
const targetStream = 0x7a26

// Option configures a harness run via functional arguments.
type Option func(*Options)

// Options holds the harness configuration.
type Options struct {
	// Targets is the number of hidden words sampled from the dictionary;
	// a value covering the dictionary evaluates every word.
	Targets int

	// Seed drives target sampling; the same (dictionary, seed, targets)
	// triple evaluates the same hidden words on every run.
	Seed int64

	// Presets lists the configurations to compare, reported in order.
	Presets []search.Preset

	// SolveOptions is appended to every Solve call, e.g. a custom opener
	// set or guess budget.
	SolveOptions []search.Option

	// Log receives one progress event per evaluated configuration.
	Log zerolog.Logger

	err error
}

// DefaultOptions returns the reference harness configuration: 20 sampled
// targets, the full preset catalog, and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Targets: DefaultTargets,
		Seed:    seedrand.DefaultSeed,
		Presets: search.Presets(),
		Log:     zerolog.Nop(),
	}
}

// WithTargets sets the sample size; must be positive.
func WithTargets(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Targets must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Targets = n
	}
}

// WithSeed fixes the target-sampling seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithPresets replaces the compared configurations; must be non-empty.
func WithPresets(presets []search.Preset) Option {
	return func(o *Options) {
		if len(presets) == 0 {
			o.err = fmt.Errorf("%w: preset list is empty", ErrOptionViolation)
			return
		}
		o.Presets = presets
	}
}

// WithSolveOptions appends options to every Solve call.
func WithSolveOptions(opts ...search.Option) Option {
	return func(o *Options) { o.SolveOptions = opts }
}

// WithLogger installs a progress logger.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) { o.Log = log }
}

// Stats aggregates one configuration's outcomes over the sampled targets.
type Stats struct {
	// Preset is the evaluated configuration.
	Preset search.Preset

	// Targets is the number of hidden words evaluated.
	Targets int

	// Solved counts successful runs; SuccessRate is Solved/Targets.
	Solved      int
	SuccessRate float64

	// MeanGuesses and MedianGuesses summarize winning path lengths over
	// the solved runs only; both are zero when nothing was solved.
	MeanGuesses   float64
	MedianGuesses float64

	// MeanExpanded and MeanGenerated average the node counters over all
	// runs, solved or not.
	MeanExpanded  float64
	MeanGenerated float64

	// MeanFrontier averages the per-run frontier peaks; MaxFrontier is
	// the largest peak observed across all runs.
	MeanFrontier float64
	MaxFrontier  int

	// Elapsed is the wall time spent on this configuration.
	Elapsed time.Duration
}

// Run evaluates every configured preset against the same seeded sample of
// hidden words and returns one Stats per preset, in preset order. One
// failing Solve call aborts the harness: by construction every sampled
// target is a dictionary word, so errors mean misconfiguration.
func Run(e *search.Engine, opts ...Option) ([]Stats, error) {
	if e == nil {
		return nil, ErrNilEngine
	}
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}
	if opt.err != nil {
		return nil, opt.err
	}

	targets := sampleTargets(e, opt.Targets, opt.Seed)
	out := make([]Stats, 0, len(opt.Presets))
	for _, p := range opt.Presets {
		st, err := evaluate(e, p, targets, opt.SolveOptions)
		if err != nil {
			return nil, err
		}
		opt.Log.Info().
			Str("preset", p.Name).
			Int("targets", st.Targets).
			Int("solved", st.Solved).
			Float64("mean_guesses", st.MeanGuesses).
			Float64("mean_expanded", st.MeanExpanded).
			Dur("elapsed", st.Elapsed).
			Msg("configuration evaluated")
		out = append(out, st)
	}

	return out, nil
}

// sampleTargets draws n distinct dictionary words with the given seed,
// returned in canonical order. n covering the dictionary selects it all.
func sampleTargets(e *search.Engine, n int, seed int64) []string {
	if n > e.Len() {
		n = e.Len()
	}
	picked := seedrand.FromSeed(seedrand.Derive(seed, targetStream)).Perm(e.Len())[:n]
	sort.Ints(picked)
	out := make([]string, n)
	for i, wi := range picked {
		out[i] = e.Word(wi)
	}

	return out
}

// evaluate runs one preset over the target sample and aggregates.
func evaluate(e *search.Engine, p search.Preset, targets []string, extra []search.Option) (Stats, error) {
	st := Stats{Preset: p, Targets: len(targets)}
	opts := append([]search.Option{search.WithPreset(p)}, extra...)

	var guesses []int
	start := time.Now()
	for _, target := range targets {
		res, err := e.Solve(target, opts...)
		if err != nil {
			return Stats{}, fmt.Errorf("bench: preset %s target %s: %w", p.Name, target, err)
		}
		st.MeanExpanded += float64(res.Metrics.NodesExpanded)
		st.MeanGenerated += float64(res.Metrics.NodesGenerated)
		st.MeanFrontier += float64(res.Metrics.MaxFrontier)
		if res.Metrics.MaxFrontier > st.MaxFrontier {
			st.MaxFrontier = res.Metrics.MaxFrontier
		}
		if res.Success {
			st.Solved++
			guesses = append(guesses, len(res.Guesses))
		}
	}
	st.Elapsed = time.Since(start)

	if st.Targets > 0 {
		st.SuccessRate = float64(st.Solved) / float64(st.Targets)
		st.MeanExpanded /= float64(st.Targets)
		st.MeanGenerated /= float64(st.Targets)
		st.MeanFrontier /= float64(st.Targets)
	}
	if len(guesses) > 0 {
		total := 0
		for _, g := range guesses {
			total += g
		}
		st.MeanGuesses = float64(total) / float64(len(guesses))
		st.MedianGuesses = median(guesses)
	}

	return st, nil
}

// median returns the middle value of the (mutated, sorted) sample; even
// sizes average the two middle values.
func median(sample []int) float64 {
	sort.Ints(sample)
	mid := len(sample) / 2
	if len(sample)%2 == 1 {
		return float64(sample[mid])
	}

	return float64(sample[mid-1]+sample[mid]) / 2
}
