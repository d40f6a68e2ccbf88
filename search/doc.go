// Package search turns the guessing game into graph search: states are
// observation histories, edges are guesses, and one generic expansion
// loop serves BFS, DFS, uniform-cost search, and A* by swapping only the
// frontier discipline.
//
// Model:
//
//   - A state is the guess/feedback history so far, the knowledge it
//     implies, and the candidate pool consistent with that knowledge.
//   - Expanding a state tries a bounded guess pool: the configured opener
//     set at history length zero, otherwise the surviving candidates in
//     canonical order, both capped by MaxBranching.
//   - A child whose implied knowledge leaves no consistent candidate is a
//     dead branch and is never pushed.
//   - The goal test fires when a popped state's own observation is the
//     all-correct pattern.
//
// Configuration:
//
//   - Algorithm selects the frontier: FIFO (BFS), LIFO (DFS), priority by
//     g (UCS), or priority by g+h (A*).
//   - Cost selects the step model; every model stays within [1, 2], so g
//     grows strictly along every path.
//   - Heuristic selects the A* estimate; both exposed models lower-bound
//     the guesses still needed on the pools they are asked about.
//   - Presets() names every behaviorally distinct triple; WithPreset
//     applies one.
//
// Determinism:
//
//	With a nil Deadline, identical inputs yield identical Results,
//	metrics included. Frontier ties break by insertion order, guess pools
//	follow canonical dictionary order, and partition statistics are
//	summed over sorted sizes so floating-point results never depend on
//	map iteration order.
//
// Outcomes:
//
//	Exhausting the frontier or the guess budget, or hitting the optional
//	Deadline, produces a normal unsuccessful Result. Errors report
//	misconfiguration only: a nil graph, an invalid dictionary, a target
//	outside it, or an invalid Option.
//
// Complexity: each expansion costs O(P·R·length) where P is the guess
// pool size and R the candidate pool size; the visited set bounds total
// work by the number of distinct observation histories reachable within
// the guess budget.
package search
