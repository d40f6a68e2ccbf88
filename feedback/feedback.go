// Package feedback - two-pass evaluation of a guess against a secret word.
//
// This file implements the core marking algorithm. Correct duplicate-letter
// handling requires two passes over the guess:
//
//	Pass 1: mark CORRECT wherever guess[i] == secret[i], consuming one
//	        instance of that letter from the secret's remaining-count pool.
//	Pass 2: over the remaining positions in guess order, mark PRESENT while
//	        the pool still holds an unconsumed instance of the guessed letter
//	        (decrementing it), else mark ABSENT.
//
// The function is pure, total and deterministic. It is NOT symmetric for
// words with repeated letters: Evaluate(a, b) and Evaluate(b, a) may differ.
package feedback

import (
	"errors"
	"fmt"
)

// Sentinel errors for evaluation and pattern decoding.
var (
	// ErrLengthMismatch is returned when guess and secret differ in length.
	ErrLengthMismatch = errors.New("feedback: guess and secret length mismatch")

	// ErrBadCode is returned when an integer code does not encode a valid
	// pattern for the requested word length.
	ErrBadCode = errors.New("feedback: code out of range for word length")
)

// Mark is the per-position ternary outcome of a guess letter.
type Mark uint8

// Mark values are ordered so that a pattern encodes as a base-3 integer
// with Absent as digit 0 and Correct as digit 2.
const (
	// Absent means the letter contributes no further occurrences.
	Absent Mark = iota
	// Present means the letter occurs in the secret, but not at this position.
	Present
	// Correct means the letter occupies exactly this position.
	Correct
)

// Symbol returns the compact single-byte rendering of the mark:
// '-' for Absent, 'Y' for Present, 'G' for Correct.
func (m Mark) Symbol() byte {
	switch m {
	case Correct:
		return 'G'
	case Present:
		return 'Y'
	default:
		return '-'
	}
}

// Pattern is the ordered per-position outcome of one guess.
// Index i holds the mark for guess letter i.
type Pattern []Mark

// Code is a Pattern packed as a base-3 integer in [0, 3^length).
// Position 0 is the least significant digit. Codes for any practical
// word length (≤ 10) fit in 16 bits.
type Code uint16

// Evaluate computes the ternary outcome pattern for guess against secret
// using the two-pass algorithm described in the package comment.
// Evaluate(w, w) is all-CORRECT for every w.
//
// Both words must have equal length; the dictionary boundary guarantees
// this for every word that reaches the search core.
//
// Complexity: O(length) time, O(1) extra space (fixed 26-letter pool).
func Evaluate(guess, secret string) (Pattern, error) {
	if len(guess) != len(secret) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrLengthMismatch, guess, secret)
	}

	var (
		n    = len(guess)
		p    = make(Pattern, n)
		pool [256]int8 // remaining-count pool per letter, derived from secret
		i    int
	)
	for i = 0; i < n; i++ {
		pool[secret[i]]++
	}

	// Pass 1: exact positions consume from the pool first.
	for i = 0; i < n; i++ {
		if guess[i] == secret[i] {
			p[i] = Correct
			pool[guess[i]]--
		}
	}

	// Pass 2: remaining positions in guess order claim leftover instances.
	for i = 0; i < n; i++ {
		if p[i] == Correct {
			continue
		}
		if pool[guess[i]] > 0 {
			p[i] = Present
			pool[guess[i]]--
		} else {
			p[i] = Absent
		}
	}

	return p, nil
}

// Code packs the pattern into its base-3 integer representation.
//
// Complexity: O(length).
func (p Pattern) Code() Code {
	var c, pow Code = 0, 1
	for _, m := range p {
		c += Code(m) * pow
		pow *= 3
	}

	return c
}

// FromCode decodes a base-3 integer back into a Pattern of the given length.
// Returns ErrBadCode when c ≥ 3^length.
//
// Complexity: O(length).
func FromCode(c Code, length int) (Pattern, error) {
	if length < 0 || int(c) >= NumPatterns(length) {
		return nil, fmt.Errorf("%w: code=%d length=%d", ErrBadCode, c, length)
	}
	p := make(Pattern, length)
	for i := 0; i < length; i++ {
		p[i] = Mark(c % 3)
		c /= 3
	}

	return p, nil
}

// AllCorrect reports whether every position is marked Correct.
func (p Pattern) AllCorrect() bool {
	for _, m := range p {
		if m != Correct {
			return false
		}
	}

	return true
}

// AllCorrectCode returns the code of the all-CORRECT pattern for the given
// word length, i.e. 3^length − 1.
func AllCorrectCode(length int) Code {
	return Code(NumPatterns(length) - 1)
}

// NumPatterns returns 3^length, the number of distinct patterns for words
// of the given length.
func NumPatterns(length int) int {
	n := 1
	for i := 0; i < length; i++ {
		n *= 3
	}

	return n
}

// String renders the pattern with one symbol per position, e.g. "GY--G".
func (p Pattern) String() string {
	buf := make([]byte, len(p))
	for i, m := range p {
		buf[i] = m.Symbol()
	}

	return string(buf)
}
