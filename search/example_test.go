package search_test

import (
	"fmt"

	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/search"
)

// ExampleEngine_Solve narrows a five-word dictionary to the hidden word
// CRANE from the fixed opener SLATE.
func ExampleEngine_Solve() {
	dict := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}
	graph, _ := cache.Build(dict, cache.WithSeed(42))
	engine, _ := search.New(dict, graph)

	res, _ := engine.Solve("CRANE",
		search.WithAlgorithm(search.BFS),
		search.WithOpeners([]string{"SLATE"}))

	fmt.Println("success:", res.Success)
	for _, obs := range res.History {
		fmt.Println(obs.Guess, obs.Pattern)
	}
	// Output:
	// success: true
	// SLATE --G-G
	// CRANE GGGGG
}

// ExampleLookupPreset applies a named configuration to a solve run.
func ExampleLookupPreset() {
	dict := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}
	graph, _ := cache.Build(dict, cache.WithSeed(42))
	engine, _ := search.New(dict, graph)

	preset, _ := search.LookupPreset("ucs-entropy")
	res, _ := engine.Solve("SHARE", search.WithPreset(preset), search.WithOpeners([]string{"SLATE"}))

	fmt.Println(res.Success, len(res.Guesses))
	// Output:
	// true 2
}
