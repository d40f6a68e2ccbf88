// Package search - the generic solve engine.
//
// One expansion loop serves all four algorithms; only the frontier
// discipline differs. A state is the observation history so far, the
// knowledge it implies, and the candidate pool consistent with that
// knowledge. Expanding a state tries a bounded set of guesses, asks the
// feedback graph what each would reveal against the hidden target, and
// pushes the surviving child states.
package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/knowledge"
)

// Engine runs solve requests over one dictionary and feedback graph.
// It is immutable after New and safe for concurrent Solve calls, since
// every run keeps its state in a private runner.
type Engine struct {
	fg       *cache.Graph
	words    []string
	index    map[string]int
	length   int
	goalCode feedback.Code
}

// New validates the candidate dictionary against the feedback graph and
// returns a ready engine. The dictionary must be non-empty, uniform in
// length, free of duplicates, and the same length as the graph's words.
//
// Errors: ErrNilCache, ErrEmptyDictionary, ErrInvalidDictionary.
func New(list []string, fg *cache.Graph) (*Engine, error) {
	if fg == nil {
		return nil, ErrNilCache
	}
	if len(list) == 0 {
		return nil, ErrEmptyDictionary
	}
	length := len(list[0])
	if length != fg.WordLength() {
		return nil, fmt.Errorf("%w: dictionary length %d, graph length %d",
			ErrInvalidDictionary, length, fg.WordLength())
	}
	index := make(map[string]int, len(list))
	words := make([]string, len(list))
	for i, w := range list {
		if len(w) != length {
			return nil, fmt.Errorf("%w: %q has length %d, want %d",
				ErrInvalidDictionary, w, len(w), length)
		}
		if _, dup := index[w]; dup {
			return nil, fmt.Errorf("%w: duplicate word %q", ErrInvalidDictionary, w)
		}
		index[w] = i
		words[i] = w
	}

	return &Engine{
		fg:       fg,
		words:    words,
		index:    index,
		length:   length,
		goalCode: feedback.AllCorrectCode(length),
	}, nil
}

// Len returns the candidate dictionary size.
func (e *Engine) Len() int { return len(e.words) }

// WordLength returns the uniform word length.
func (e *Engine) WordLength() int { return e.length }

// Word returns the i-th dictionary word in canonical order.
func (e *Engine) Word(i int) string { return e.words[i] }

// Solve searches for target under the supplied options. An exhausted
// frontier, a spent guess budget, or an expired deadline all yield a
// normal unsuccessful Result; errors report misconfiguration only.
//
// Determinism: with a nil Deadline, identical inputs produce identical
// Results, including Metrics. Priority ties break by insertion order and
// partition statistics are accumulated over sorted sizes.
//
// Errors: ErrUnknownTarget, ErrOptionViolation and the enum sentinels
// recorded by invalid Options.
func (e *Engine) Solve(target string, opts ...Option) (Result, error) {
	opt := DefaultOptions()
	for _, fn := range opts {
		fn(&opt)
	}
	if err := opt.validate(); err != nil {
		return Result{}, err
	}
	if _, ok := e.index[target]; !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	openers, err := e.resolveOpeners(opt.Openers)
	if err != nil {
		return Result{}, err
	}

	r := &runner{
		e:       e,
		opt:     &opt,
		target:  target,
		openers: openers,
		fr:      newFrontier(disciplineFor(opt.Algorithm)),
		visited: make(map[string]struct{}),
		tried:   make(map[string]struct{}),
	}

	return r.run()
}

// resolveOpeners maps the configured opener words onto dictionary
// indices, skipping absentees and duplicates while preserving order.
func (e *Engine) resolveOpeners(openers []string) ([]int, error) {
	out := make([]int, 0, len(openers))
	seen := make(map[int]struct{}, len(openers))
	for _, w := range openers {
		i, ok := e.index[w]
		if !ok {
			continue
		}
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no opener present in dictionary", ErrOptionViolation)
	}

	return out, nil
}

// runner holds the per-run mutable state of one Solve call.
type runner struct {
	e       *Engine
	opt     *Options
	target  string
	openers []int
	fr      *frontier
	visited map[string]struct{}
	tried   map[string]struct{}
	metrics Metrics
}

// run drives the pop/expand loop to a Result.
func (r *runner) run() (Result, error) {
	root, err := r.root()
	if err != nil {
		return Result{}, err
	}
	r.fr.push(root, 0)
	r.noteFrontier()

	for !r.fr.empty() {
		if r.opt.Deadline != nil && r.opt.Deadline() {
			break
		}
		n := r.fr.pop()
		sig := n.signature()
		if _, seen := r.visited[sig]; seen {
			continue
		}
		r.visited[sig] = struct{}{}
		if n.depth > 0 && n.code == r.e.goalCode {
			return r.found(n)
		}
		if n.depth >= r.opt.GuessBudget {
			continue
		}
		r.metrics.NodesExpanded++
		if err := r.expand(n); err != nil {
			return Result{}, err
		}
		r.noteFrontier()
	}

	return Result{Target: r.target, Metrics: r.metrics}, nil
}

// root builds the empty-history state over the full candidate pool.
func (r *runner) root() (*node, error) {
	know, err := knowledge.Empty(r.e.length)
	if err != nil {
		return nil, err
	}
	remaining := make([]int, len(r.e.words))
	for i := range remaining {
		remaining[i] = i
	}

	return &node{know: know, remaining: remaining}, nil
}

// expand tries the state's guess pool and pushes every live child.
func (r *runner) expand(n *node) error {
	before := len(n.remaining)
	for _, gi := range r.guessPool(n) {
		guess := r.e.words[gi]
		if _, dup := r.tried[guess]; !dup {
			r.tried[guess] = struct{}{}
			r.metrics.DistinctGuesses++
		}

		code, err := r.e.fg.GetCode(guess, r.target)
		if err != nil {
			return err
		}
		p, err := feedback.FromCode(code, r.e.length)
		if err != nil {
			return err
		}
		know, err := n.know.Extend(guess, p)
		if err != nil {
			return err
		}

		// One pass over the parent pool: partition histogram for the cost
		// and heuristic models, plus the child's surviving candidates.
		hist := make(map[feedback.Code]int, feedback.NumPatterns(r.e.length))
		var remaining []int
		for _, ci := range n.remaining {
			cw := r.e.words[ci]
			cc, cerr := r.e.fg.GetCode(guess, cw)
			if cerr != nil {
				return cerr
			}
			hist[cc]++
			if know.Consistent(cw) {
				remaining = append(remaining, ci)
			}
		}
		if len(remaining) == 0 {
			// Dead branch: no candidate fits the implied knowledge.
			continue
		}
		after := len(remaining)
		parts := make([]int, 0, len(hist))
		for _, sz := range hist {
			parts = append(parts, sz)
		}
		sort.Ints(parts)

		child := &node{
			parent:    n,
			guess:     guess,
			code:      code,
			depth:     n.depth + 1,
			g:         n.g + stepCost(r.opt.Cost, before, after, parts),
			know:      know,
			remaining: remaining,
		}
		r.fr.push(child, r.priority(child, after, parts))
		r.metrics.NodesGenerated++
	}

	return nil
}

// guessPool selects the guesses tried from a state: the opener set at
// history length zero, otherwise the surviving candidates in canonical
// order, both capped by MaxBranching.
func (r *runner) guessPool(n *node) []int {
	pool := n.remaining
	if n.depth == 0 {
		pool = r.openers
	}
	if len(pool) > r.opt.MaxBranching {
		pool = pool[:r.opt.MaxBranching]
	}

	return pool
}

// priority computes the frontier key for the configured discipline.
func (r *runner) priority(child *node, after int, parts []int) float64 {
	switch disciplineFor(r.opt.Algorithm) {
	case disciplineCost:
		return child.g
	case disciplineCostHeuristic:
		return child.g + estimate(r.opt.Heuristic, after, parts)
	default:
		return 0
	}
}

// noteFrontier tracks the peak frontier size.
func (r *runner) noteFrontier() {
	if l := r.fr.len(); l > r.metrics.MaxFrontier {
		r.metrics.MaxFrontier = l
	}
}

// found materializes the winning path into a successful Result.
func (r *runner) found(n *node) (Result, error) {
	history, err := n.observations(r.e.length)
	if err != nil {
		return Result{}, err
	}
	guesses := make([]string, len(history))
	for i, obs := range history {
		guesses[i] = obs.Guess
	}

	return Result{
		Target:  r.target,
		Success: true,
		Guesses: guesses,
		History: history,
		Metrics: r.metrics,
	}, nil
}
