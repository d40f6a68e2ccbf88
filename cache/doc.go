// Package cache provides the memory-bounded sparse feedback graph: a
// precomputed (guess, target) → pattern lookup with an exact-computation
// fallback on cold misses.
//
// What:
//
//   - Build(words, WithMaxEdges(K), WithSeed(s)) precomputes, per word, the
//     self-edge plus up to K−1 seeded-sampled neighbor edges.
//   - Get / GetCode return the cached pattern when the edge exists and
//     evaluate directly otherwise; the two paths are observably identical.
//   - Restore materializes a graph from persisted edge rows (see
//     cache/store) without re-evaluating feedback.
//
// Why sparse:
//
//	The full pairwise table is quadratic in the dictionary size. Bounding
//	each word at K edges keeps memory at O(N·K) while early-game lookups
//	(large candidate pools, random access) still hit often; late-game
//	pools are small enough that misses are cheap to evaluate.
//
// Determinism:
//
//	Sampling is driven by a single seeded generator over the canonical word
//	order, so the same (dictionary, K, seed) triple reproduces the graph
//	bit-for-bit on any machine. Seed 0 selects a fixed default seed, never
//	a time-based one.
//
// Concurrency:
//
//	A built graph is never mutated; share it by reference across
//	concurrent search runs. Building is a one-time, single-writer step.
//
// Errors: ErrNoWords, ErrWordLength, ErrDuplicateWord, ErrOptionViolation,
// ErrRestoreShape. Cold misses are not errors.
//
// Complexity: Build O(N·K·length); Get O(log K) hit, O(length) miss.
package cache
