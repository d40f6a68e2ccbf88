package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexipath/game"
)

var (
	flagPlayBudget int
	flagPlaySeed   int64
	flagPlayHints  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round against a seeded random hidden word",
	Args:  cobra.NoArgs,
	RunE:  runPlay,
}

func init() {
	f := playCmd.Flags()
	f.IntVar(&flagPlayBudget, "budget", game.DefaultBudget, "guesses allowed per round")
	f.Int64Var(&flagPlaySeed, "word-seed", 0, "hidden-word seed (0 = current time)")
	f.BoolVar(&flagPlayHints, "hints", false, "show how many candidates remain after each guess")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	list, err := loadDictionary()
	if err != nil {
		return err
	}
	seed := flagPlaySeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.NewRandom(list, seed, game.WithBudget(flagPlayBudget))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "guess the hidden %d-letter word, %d attempts\n",
		len(list[0]), g.Budget())

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for !g.Over() {
		fmt.Fprintf(out, "[%d/%d] > ", g.Turns()+1, g.Budget())
		if !scanner.Scan() {
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		p, gerr := g.Guess(raw)
		switch {
		case errors.Is(gerr, game.ErrUnknownWord):
			fmt.Fprintln(out, "not in the dictionary, try again")
			continue
		case gerr != nil:
			fmt.Fprintln(out, gerr)
			continue
		}

		fmt.Fprintln(out, p)
		if flagPlayHints && !g.Over() {
			fmt.Fprintf(out, "%d candidate(s) remain\n", len(g.Remaining()))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	switch {
	case g.Won():
		fmt.Fprintf(out, "solved in %d guess(es)\n", g.Turns())
	case g.Lost():
		fmt.Fprintf(out, "out of attempts, the word was %s\n", g.Target())
	default:
		fmt.Fprintln(out, "round abandoned")
	}

	return nil
}
