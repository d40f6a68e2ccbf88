// Package game runs one hidden-word round: a fixed dictionary, a hidden
// target, a bounded number of guesses, and truthful feedback after each.
// The round tracks the knowledge every revealed pattern implies, so a
// caller can show the consistent candidates left at any point or hand
// the accumulated observations to a solver.
//
// A round is in exactly one of three states: in play, won (some guess
// hit the hidden word), or lost (the budget is spent). Guessing after
// the round is over returns ErrFinished; the hidden word stays hidden
// until then.
//
// Determinism: NewRandom draws the target with a seeded generator, so a
// given (dictionary, seed) pair replays the same round.
//
// Errors: ErrEmptyDictionary, ErrUnknownTarget, ErrUnknownWord,
// ErrFinished, ErrOptionViolation; malformed guess text surfaces the
// ingestion error words.ErrInvalidWord.
package game
