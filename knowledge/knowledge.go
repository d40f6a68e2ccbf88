// Package knowledge - incremental constraint propagation over observations.
//
// A Knowledge value accumulates positional and frequency letter constraints
// from an observation history. Values are immutable once published: Extend
// clones and applies one observation, so sibling search branches never share
// mutable state.
package knowledge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexipath/feedback"
)

// Sentinel errors for knowledge construction.
var (
	// ErrBadLength is returned for a non-positive or oversized word length.
	ErrBadLength = errors.New("knowledge: invalid word length")

	// ErrObservationShape is returned when a guess and its pattern disagree
	// with the tracked word length.
	ErrObservationShape = errors.New("knowledge: observation does not match word length")
)

// alphabetSize is the tracked alphabet: uppercase ASCII letters A..Z.
const alphabetSize = 26

// maxWordLength bounds per-letter counts to the uint8 bookkeeping below.
const maxWordLength = 26

// letterSet is a bitmask over the 26-letter alphabet.
type letterSet uint32

func (s letterSet) has(li int) bool     { return s&(1<<uint(li)) != 0 }
func (s letterSet) add(li int) letterSet { return s | (1 << uint(li)) }
func (s letterSet) del(li int) letterSet { return s &^ (1 << uint(li)) }

// Knowledge captures every constraint derivable from an observation history:
//
//   - known:    position → letter pinned by a CORRECT mark (0 = unknown);
//   - excluded: position → letters disallowed at that position;
//   - minCount: letter → inclusive lower bound on occurrences;
//   - maxCount: letter → inclusive upper bound on occurrences
//     (maxCount == 0 means the letter is fully excluded).
//
// Invariants: 0 ≤ minCount ≤ maxCount ≤ word length for every letter of a
// well-formed history, and a known position's letter never appears in that
// position's exclusion set. Malformed feedback can drive minCount above
// maxCount; such knowledge is contradictory and Consistent then rejects
// every word, which the search treats as a dead branch rather than a fault.
type Knowledge struct {
	length   int
	known    []byte
	excluded []letterSet
	minCount [alphabetSize]uint8
	maxCount [alphabetSize]uint8
}

// Empty returns an unconstrained Knowledge for words of the given length.
//
// Complexity: O(length).
func Empty(wordLength int) (*Knowledge, error) {
	if wordLength <= 0 || wordLength > maxWordLength {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, wordLength)
	}
	k := &Knowledge{
		length:   wordLength,
		known:    make([]byte, wordLength),
		excluded: make([]letterSet, wordLength),
	}
	for li := 0; li < alphabetSize; li++ {
		k.maxCount[li] = uint8(wordLength)
	}

	return k, nil
}

// clone makes an independent copy; the receiver stays untouched.
func (k *Knowledge) clone() *Knowledge {
	c := &Knowledge{
		length:   k.length,
		known:    make([]byte, k.length),
		excluded: make([]letterSet, k.length),
		minCount: k.minCount,
		maxCount: k.maxCount,
	}
	copy(c.known, k.known)
	copy(c.excluded, k.excluded)

	return c
}

// Extend returns a new Knowledge with one (guess, pattern) observation
// incorporated; the receiver is never mutated.
//
// Per-position rules:
//
//   - CORRECT pins the letter at the position and counts toward its minimum;
//   - PRESENT excludes the letter at the position and counts toward its minimum;
//   - ABSENT excludes the letter at the position. If the same letter earned a
//     CORRECT or PRESENT mark elsewhere in this guess, ABSENT means "no
//     further occurrences": the letter's maximum is clamped to the number of
//     positive marks, not to zero. Only a letter with no positive mark in the
//     whole guess becomes fully excluded (maxCount = 0).
//
// Complexity: O(length) time, O(length) space for the clone.
func (k *Knowledge) Extend(guess string, p feedback.Pattern) (*Knowledge, error) {
	if len(guess) != k.length || len(p) != k.length {
		return nil, fmt.Errorf("%w: guess=%q pattern=%q length=%d", ErrObservationShape, guess, p, k.length)
	}

	var (
		next      = k.clone()
		positives [alphabetSize]uint8
		absents   [alphabetSize]uint8
		inGuess   letterSet
	)

	for i := 0; i < k.length; i++ {
		li := letterIndex(guess[i])
		if li < 0 {
			return nil, fmt.Errorf("%w: guess=%q has non-alphabet letter", ErrObservationShape, guess)
		}
		inGuess = inGuess.add(li)

		switch p[i] {
		case feedback.Correct:
			next.known[i] = guess[i]
			// The pinned letter must never sit in its own position's
			// exclusion set.
			next.excluded[i] = next.excluded[i].del(li)
			positives[li]++
		case feedback.Present:
			positives[li]++
			if next.known[i] != guess[i] {
				next.excluded[i] = next.excluded[i].add(li)
			}
		default: // Absent
			absents[li]++
			if next.known[i] != guess[i] {
				next.excluded[i] = next.excluded[i].add(li)
			}
		}
	}

	// Frequency bounds, one pass per distinct letter of the guess.
	for li := 0; li < alphabetSize; li++ {
		if !inGuess.has(li) {
			continue
		}
		pos := positives[li]
		if pos == 0 {
			next.maxCount[li] = 0
			continue
		}
		if pos > next.minCount[li] {
			next.minCount[li] = pos
		}
		if absents[li] > 0 && pos < next.maxCount[li] {
			next.maxCount[li] = pos
		}
	}

	return next, nil
}

// Consistent reports whether word satisfies every accumulated constraint:
// it matches each known position, avoids each positional exclusion, and
// every letter's occurrence count lies within [minCount, maxCount].
//
// Complexity: O(length) time, zero allocations.
func (k *Knowledge) Consistent(word string) bool {
	if len(word) != k.length {
		return false
	}

	var counts [alphabetSize]uint8
	for i := 0; i < k.length; i++ {
		li := letterIndex(word[i])
		if li < 0 {
			return false
		}
		if k.known[i] != 0 && word[i] != k.known[i] {
			return false
		}
		if k.excluded[i].has(li) {
			return false
		}
		counts[li]++
	}

	for li := 0; li < alphabetSize; li++ {
		if counts[li] < k.minCount[li] || counts[li] > k.maxCount[li] {
			return false
		}
	}

	return true
}

// Filter returns the subset of candidates consistent with k, preserving the
// input order. The result is always a subset of the input, so filtering is
// monotone as history grows.
//
// Complexity: O(candidates · length).
func (k *Knowledge) Filter(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if k.Consistent(w) {
			out = append(out, w)
		}
	}

	return out
}

// WordLength returns the tracked word length.
func (k *Knowledge) WordLength() int { return k.length }

// Known returns the pinned letter at pos, if any.
func (k *Knowledge) Known(pos int) (byte, bool) {
	if pos < 0 || pos >= k.length || k.known[pos] == 0 {
		return 0, false
	}

	return k.known[pos], true
}

// ExcludedAt reports whether letter is disallowed at pos.
func (k *Knowledge) ExcludedAt(pos int, letter byte) bool {
	li := letterIndex(letter)
	if pos < 0 || pos >= k.length || li < 0 {
		return false
	}

	return k.excluded[pos].has(li)
}

// MinCount returns the inclusive lower occurrence bound for letter.
func (k *Knowledge) MinCount(letter byte) int {
	li := letterIndex(letter)
	if li < 0 {
		return 0
	}

	return int(k.minCount[li])
}

// MaxCount returns the inclusive upper occurrence bound for letter.
func (k *Knowledge) MaxCount(letter byte) int {
	li := letterIndex(letter)
	if li < 0 {
		return 0
	}

	return int(k.maxCount[li])
}

// Excluded reports whether letter is fully excluded (maxCount == 0).
func (k *Knowledge) Excluded(letter byte) bool {
	li := letterIndex(letter)

	return li >= 0 && k.maxCount[li] == 0
}

// letterIndex maps 'A'..'Z' onto 0..25 and everything else onto -1.
func letterIndex(c byte) int {
	if c < 'A' || c > 'Z' {
		return -1
	}

	return int(c - 'A')
}
