package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexipath/bench"
	"github.com/katalvlaran/lexipath/search"
)

var (
	flagBenchTargets int
	flagBenchSeed    int64
	flagBenchPresets []string
	flagBenchList    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare solver configurations over a sampled target set",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&flagBenchTargets, "targets", bench.DefaultTargets, "hidden words sampled from the dictionary")
	f.Int64Var(&flagBenchSeed, "sample-seed", 1, "target-sampling seed")
	f.StringSliceVar(&flagBenchPresets, "presets", nil, "preset names to compare (default: all)")
	f.BoolVar(&flagBenchList, "list", false, "list the preset catalog and exit")

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagBenchList {
		for _, p := range search.Presets() {
			fmt.Fprintln(out, p.Name)
		}

		return nil
	}

	opts := []bench.Option{
		bench.WithTargets(flagBenchTargets),
		bench.WithSeed(flagBenchSeed),
		bench.WithLogger(log),
	}
	if len(flagBenchPresets) > 0 {
		presets := make([]search.Preset, 0, len(flagBenchPresets))
		for _, name := range flagBenchPresets {
			p, err := search.LookupPreset(name)
			if err != nil {
				return err
			}
			presets = append(presets, p)
		}
		opts = append(opts, bench.WithPresets(presets))
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
	stats, err := bench.Run(engine, opts...)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSOLVED\tMEAN\tMEDIAN\tEXPANDED\tFRONTIER\tELAPSED")
	for _, st := range stats {
		fmt.Fprintf(w, "%s\t%d/%d\t%.2f\t%.1f\t%.1f\t%d\t%s\n",
			st.Preset.Name, st.Solved, st.Targets,
			st.MeanGuesses, st.MedianGuesses,
			st.MeanExpanded, st.MaxFrontier, st.Elapsed.Round(time.Millisecond))
	}

	return w.Flush()
}
