// Package lexipath turns the classic word-guessing game into graph
// search — from exact duplicate-aware feedback up to A* with pluggable
// cost and heuristic models.
//
// 🚀 What is lexipath?
//
//	A deterministic solver engine and evaluation harness that brings together:
//		• Feedback: exact two-pass pattern evaluation with duplicate-letter accounting
//		• Knowledge: monotone constraint tracking over positions and letter counts
//		• Cache: a memory-bounded sparse feedback graph with exact fallback
//		• Store: persistent cache artifacts on BadgerDB, staleness-checked
//		• Search: BFS, DFS, uniform-cost and A* behind one generic expansion loop
//		• Bench: side-by-side preset comparison over seeded target samples
//		• Game: a playable hidden-word round with live candidate tracking
//
// ✨ Why choose lexipath?
//
//   - Reproducible – every seeded run replays bit-for-bit, metrics included
//   - Honest outcomes – exhausted budgets are results, not errors
//   - Explainable – each solve reports its full guess/feedback path
//   - Extensible – cost and heuristic models plug into one engine
//
// Under the hood, everything is organized under focused subpackages:
//
//	feedback/  — patterns, compact codes, the exact evaluator
//	knowledge/ — constraint state, consistency, candidate filtering
//	cache/     — the sparse feedback graph (cache/store persists it)
//	words/     — dictionary ingestion, normalization, fingerprinting
//	search/    — the engine, cost/heuristic models, preset catalog
//	bench/     — the batch evaluation harness
//	game/      — the interactive round
//	cmd/       — the lexipath command-line front end
//
// Quick feedback example:
//
//	guess  SPEED
//	secret ERASE
//	       Y-YY-
//
//	one E matches by count, the second is exhausted and stays absent.
//
// Start with search.New and Engine.Solve; the embedded dictionary in
// words.Default gets you running without any files.
//
//	go get github.com/katalvlaran/lexipath
package lexipath
