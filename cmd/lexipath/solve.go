package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexipath/search"
	"github.com/katalvlaran/lexipath/words"
)

var (
	flagPreset    string
	flagAlgorithm string
	flagCost      string
	flagHeuristic string
	flagBranching int
	flagBudget    int
	flagOpeners   []string
	flagTimeout   time.Duration
)

var solveCmd = &cobra.Command{
	Use:   "solve TARGET",
	Short: "Search for a hidden word and print the guess path",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&flagPreset, "preset", "", "named configuration (see 'lexipath bench --list')")
	f.StringVar(&flagAlgorithm, "algorithm", "", "bfs, dfs, ucs, or astar")
	f.StringVar(&flagCost, "cost", "", "constant, reduction, worst-partition, or entropy")
	f.StringVar(&flagHeuristic, "heuristic", "", "none, log2, or worst-partition-log2")
	f.IntVar(&flagBranching, "branching", search.DefaultMaxBranching, "max guesses tried per state")
	f.IntVar(&flagBudget, "budget", search.DefaultGuessBudget, "max guesses per path")
	f.StringSliceVar(&flagOpeners, "openers", nil, "opening guesses (default: curated set)")
	f.DurationVar(&flagTimeout, "timeout", 0, "abort the search after this duration (0 = none)")

	rootCmd.AddCommand(solveCmd)
}

// solveOptions translates the solve flags into engine options.
func solveOptions() ([]search.Option, error) {
	opts := []search.Option{
		search.WithMaxBranching(flagBranching),
		search.WithGuessBudget(flagBudget),
	}
	if flagPreset != "" {
		p, err := search.LookupPreset(flagPreset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithPreset(p))
	}
	if flagAlgorithm != "" {
		a, err := search.ParseAlgorithm(flagAlgorithm)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithAlgorithm(a))
	}
	if flagCost != "" {
		c, err := search.ParseCost(flagCost)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithCost(c))
	}
	if flagHeuristic != "" {
		h, err := search.ParseHeuristic(flagHeuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, search.WithHeuristic(h))
	}
	if len(flagOpeners) > 0 {
		openers := make([]string, 0, len(flagOpeners))
		for _, raw := range flagOpeners {
			w, err := words.Normalize(raw)
			if err != nil {
				return nil, fmt.Errorf("opener %q: %w", raw, err)
			}
			openers = append(openers, w)
		}
		opts = append(opts, search.WithOpeners(openers))
	}
	if flagTimeout > 0 {
		deadline := time.Now().Add(flagTimeout)
		opts = append(opts, search.WithDeadline(func() bool {
			return time.Now().After(deadline)
		}))
	}

	return opts, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	target, err := words.Normalize(args[0])
	if err != nil {
		return err
	}
	opts, err := solveOptions()
	if err != nil {
		return err
	}
	list, err := loadDictionary()
	if err != nil {
		return err
	}
	graph, closeGraph, err := loadGraph(list)
	if err != nil {
		return err
	}
	defer closeGraph()

	engine, err := search.New(list, graph)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := engine.Solve(target, opts...)
	if err != nil {
		return err
	}
	log.Info().
		Str("target", target).
		Bool("success", res.Success).
		Int("guesses", len(res.Guesses)).
		Int("expanded", res.Metrics.NodesExpanded).
		Int("generated", res.Metrics.NodesGenerated).
		Int("max_frontier", res.Metrics.MaxFrontier).
		Dur("elapsed", time.Since(start)).
		Msg("search finished")

	out := cmd.OutOrStdout()
	if !res.Success {
		fmt.Fprintf(out, "no path to %s within the configured limits\n", target)

		return nil
	}
	for i, obs := range res.History {
		fmt.Fprintf(out, "%d. %s %s\n", i+1, obs.Guess, obs.Pattern)
	}
	fmt.Fprintf(out, "solved %s in %d guess(es): %s\n",
		target, len(res.Guesses), strings.Join(res.Guesses, " -> "))

	return nil
}
