// Package knowledge tracks the constraints a guess history reveals about a
// hidden target word.
//
// What:
//
//   - Empty(wordLength) creates an unconstrained tracker.
//   - Extend(guess, pattern) clones the tracker and folds in one observation;
//     the receiver is never mutated, so sibling search branches stay isolated.
//   - Consistent(word) and Filter(candidates) test words against every
//     accumulated constraint.
//
// Constraint model:
//
//	known positions (CORRECT marks), per-position letter exclusions
//	(PRESENT and ABSENT marks), and per-letter occurrence bounds
//	[minCount, maxCount]. The duplicate-letter edge case is handled
//	exactly: an ABSENT mark for a letter that also earned positive marks
//	in the same guess clamps the letter's maximum to the positive-mark
//	count instead of excluding it outright.
//
// Monotonicity:
//
//	Filter only ever removes candidates as history grows. For any history H
//	and one-observation extension H', Filter(D, H') ⊆ Filter(D, H).
//
// Contradictory input (possible only with malformed feedback) yields a
// tracker whose bounds admit no word; Consistent then rejects everything,
// which callers treat as a dead branch rather than an error.
//
// Complexity: Extend and Consistent are O(length); Filter is O(n·length).
package knowledge
