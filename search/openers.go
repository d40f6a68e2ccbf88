// Package search - opening guess sets.
package search

import "github.com/katalvlaran/lexipath/internal/seedrand"

// defaultOpeners is a small curated set of letter-diverse five-letter
// starters. Entries absent from a run's dictionary are skipped at solve
// time, so the list is safe to use as a default even for trimmed
// dictionaries; non-five-letter dictionaries need WithOpeners.
var defaultOpeners = []string{
	"SLATE",
	"CRANE",
	"TRACE",
	"STARE",
	"ADIEU",
	"ROATE",
	"SALET",
	"AUDIO",
}

// DefaultOpeners returns a copy of the curated opener list.
func DefaultOpeners() []string {
	out := make([]string, len(defaultOpeners))
	copy(out, defaultOpeners)

	return out
}

// SampleOpeners draws n distinct words from list using the given seed,
// preserving the list's original order among the drawn words. It returns
// a copy of the whole list when n covers it. Identical inputs always
// yield the identical sample.
func SampleOpeners(list []string, n int, seed int64) []string {
	if n >= len(list) {
		out := make([]string, len(list))
		copy(out, list)

		return out
	}
	if n <= 0 {
		return nil
	}

	rng := seedrand.FromSeed(seed)
	picked := rng.Perm(len(list))[:n]
	keep := make(map[int]struct{}, n)
	for _, i := range picked {
		keep[i] = struct{}{}
	}
	out := make([]string, 0, n)
	for i, w := range list {
		if _, ok := keep[i]; ok {
			out = append(out, w)
		}
	}

	return out
}
