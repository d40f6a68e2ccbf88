// Package game - the interactive hidden-word game loop.
package game

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/internal/seedrand"
	"github.com/katalvlaran/lexipath/knowledge"
	"github.com/katalvlaran/lexipath/words"
)

// Sentinel errors for game construction and play.
var (
	// ErrEmptyDictionary is returned when New is given no words.
	ErrEmptyDictionary = errors.New("game: empty dictionary")

	// ErrUnknownTarget is returned when the hidden word is not in the
	// dictionary.
	ErrUnknownTarget = errors.New("game: target not in dictionary")

	// ErrUnknownWord is returned for a guess outside the dictionary.
	ErrUnknownWord = errors.New("game: guess not in dictionary")

	// ErrFinished is returned for a guess after the game is over.
	ErrFinished = errors.New("game: already finished")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("game: invalid option supplied")
)

// DefaultBudget is the classic attempt limit.
const DefaultBudget = 6

// Option configures a game via functional arguments.
type Option func(*config)

type config struct {
	budget int
	err    error
}

// WithBudget sets the attempt limit; must be positive.
func WithBudget(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: budget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		c.budget = n
	}
}

// Turn is one played guess and its revealed pattern.
type Turn struct {
	Guess   string
	Pattern feedback.Pattern
}

// Game tracks one hidden-word round: the guesses played, the feedback
// revealed, and the knowledge the player has accumulated so far.
type Game struct {
	dict    []string
	index   map[string]struct{}
	target  string
	budget  int
	know    *knowledge.Knowledge
	history []Turn
	won     bool
}

// New starts a round with an explicit hidden word. The dictionary is
// taken as already ingested: uniform length, normalized, deduplicated.
//
// Errors: ErrEmptyDictionary, ErrUnknownTarget, ErrOptionViolation.
func New(dict []string, target string, opts ...Option) (*Game, error) {
	if len(dict) == 0 {
		return nil, ErrEmptyDictionary
	}
	cfg := config{budget: DefaultBudget}
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	index := make(map[string]struct{}, len(dict))
	list := make([]string, len(dict))
	for i, w := range dict {
		index[w] = struct{}{}
		list[i] = w
	}
	if _, ok := index[target]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	know, err := knowledge.Empty(len(target))
	if err != nil {
		return nil, err
	}

	return &Game{
		dict:   list,
		index:  index,
		target: target,
		budget: cfg.budget,
		know:   know,
	}, nil
}

// NewRandom starts a round against a seeded random dictionary word, so a
// given (dictionary, seed) pair always replays the same hidden word.
func NewRandom(dict []string, seed int64, opts ...Option) (*Game, error) {
	if len(dict) == 0 {
		return nil, ErrEmptyDictionary
	}
	target := dict[seedrand.FromSeed(seed).Intn(len(dict))]

	return New(dict, target, opts...)
}

// Guess plays one word. Raw input is normalized before matching, so
// lower-case play works. The revealed pattern extends the tracked
// knowledge; an all-correct pattern wins the round.
//
// Errors: ErrFinished, words.ErrInvalidWord, ErrUnknownWord.
func (g *Game) Guess(raw string) (feedback.Pattern, error) {
	if g.Over() {
		return nil, ErrFinished
	}
	w, err := words.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if _, ok := g.index[w]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWord, w)
	}

	p, err := feedback.Evaluate(w, g.target)
	if err != nil {
		return nil, err
	}
	know, err := g.know.Extend(w, p)
	if err != nil {
		return nil, err
	}
	g.know = know
	g.history = append(g.history, Turn{Guess: w, Pattern: p})
	if p.AllCorrect() {
		g.won = true
	}

	return p, nil
}

// Won reports whether a guess hit the hidden word.
func (g *Game) Won() bool { return g.won }

// Lost reports whether the budget is spent without a win.
func (g *Game) Lost() bool { return !g.won && len(g.history) >= g.budget }

// Over reports whether the round accepts no further guesses.
func (g *Game) Over() bool { return g.won || g.Lost() }

// Turns returns the number of guesses played.
func (g *Game) Turns() int { return len(g.history) }

// Budget returns the attempt limit.
func (g *Game) Budget() int { return g.budget }

// History returns a copy of the played turns in order.
func (g *Game) History() []Turn {
	out := make([]Turn, len(g.history))
	copy(out, g.history)

	return out
}

// Remaining returns the dictionary words still consistent with
// everything revealed so far, in canonical order.
func (g *Game) Remaining() []string {
	return g.know.Filter(g.dict)
}

// Knowledge returns the accumulated constraint state.
func (g *Game) Knowledge() *knowledge.Knowledge { return g.know }

// Target reveals the hidden word once the round is over; before that it
// returns the empty string.
func (g *Game) Target() string {
	if !g.Over() {
		return ""
	}

	return g.target
}
