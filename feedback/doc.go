// Package feedback computes Wordle-style ternary outcome patterns for
// (guess, secret) word pairs.
//
// What:
//
//   - Evaluate(guess, secret) produces an ordered Pattern of per-position
//     marks {Correct, Present, Absent} using the two-pass algorithm that
//     accounts for duplicate letters exactly.
//   - Pattern values pack into a base-3 integer Code in [0, 3^length),
//     suitable for compact storage and hashing; FromCode reverses it.
//
// Why two passes:
//
//	A single pass over-reports Present for repeated letters. Pass 1 reserves
//	pool instances for exact matches; pass 2 hands the leftovers to earlier
//	guess positions. The result matches the reference puzzle's accounting:
//	a letter marked Absent after an earlier Present/Correct mark means
//	"no further occurrences", not "not in the word".
//
// Determinism:
//
//	Evaluate is pure and total over equal-length inputs. For every word w,
//	Evaluate(w, w) is all-CORRECT. The function is not symmetric when
//	either word repeats letters.
//
// Errors:
//
//   - ErrLengthMismatch: guess and secret differ in length.
//   - ErrBadCode: integer code outside [0, 3^length).
//
// Complexity: every operation is O(length) time.
//
// See also: package knowledge (constraint propagation over patterns) and
// package cache (bounded precomputed pattern lookup).
package feedback
