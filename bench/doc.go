// Package bench compares solve configurations side by side: it draws a
// seeded sample of hidden words from an engine's dictionary, runs every
// configured preset against the same sample, and aggregates success
// rates, guess counts, and node counters per configuration.
//
// Determinism:
//
//	Target sampling is seeded, so the same (dictionary, seed, sample
//	size) triple always evaluates the same hidden words; with a fixed
//	solve configuration every counter in Stats reproduces exactly.
//	Elapsed wall time is the one deliberately unreproducible field.
//
// Outcomes:
//
//	Unsolved targets lower SuccessRate but never abort the harness; a
//	Solve error does abort it, because sampled targets are dictionary
//	words by construction and errors therefore mean misconfiguration.
//
// Errors: ErrNilEngine, ErrOptionViolation.
package bench
