package knowledge_test

import (
	"fmt"

	"github.com/katalvlaran/lexipath/feedback"
	"github.com/katalvlaran/lexipath/knowledge"
)

// ExampleKnowledge_Filter narrows a small dictionary with two observations
// against the hidden word STARE.
func ExampleKnowledge_Filter() {
	words := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}
	k, _ := knowledge.Empty(5)

	for _, guess := range []string{"CRANE", "SHARE"} {
		p, _ := feedback.Evaluate(guess, "STARE")
		k, _ = k.Extend(guess, p)
		fmt.Printf("%s %s -> %v\n", guess, p, k.Filter(words))
	}
	// Output:
	// CRANE -YG-G -> [STARE SHARE]
	// SHARE G-GGG -> [STARE]
}
