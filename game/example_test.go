package game_test

import (
	"fmt"

	"github.com/katalvlaran/lexipath/game"
)

// Example plays a short round against a known hidden word.
func Example() {
	dict := []string{"CRANE", "TRACE", "SLATE", "STARE", "SHARE"}
	g, _ := game.New(dict, "STARE")

	for _, guess := range []string{"crane", "stare"} {
		p, _ := g.Guess(guess)
		fmt.Printf("%s %s (left: %d)\n", guess, p, len(g.Remaining()))
	}
	fmt.Println("won:", g.Won())
	// Output:
	// crane -YG-G (left: 2)
	// stare GGGGG (left: 1)
	// won: true
}
