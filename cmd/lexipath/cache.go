package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexipath/cache/store"
	"github.com/katalvlaran/lexipath/words"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the persistent feedback-graph cache",
}

var cacheBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the feedback graph and persist it",
	Args:  cobra.NoArgs,
	RunE:  runCacheBuild,
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe the persisted feedback-graph artifact",
	Args:  cobra.NoArgs,
	RunE:  runCacheInfo,
}

func init() {
	cacheCmd.AddCommand(cacheBuildCmd, cacheInfoCmd)
	rootCmd.AddCommand(cacheCmd)
}

// requireCacheDir fails fast when no persistent location is configured.
func requireCacheDir() (string, error) {
	dir := cacheDir()
	if dir == "" {
		return "", fmt.Errorf("no cache directory: set --cache-dir or %s", envCacheDir)
	}

	return dir, nil
}

func runCacheBuild(cmd *cobra.Command, args []string) error {
	if _, err := requireCacheDir(); err != nil {
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

	fmt.Fprintf(cmd.OutOrStdout(), "cached %d words, %d edges (cap %d, seed %d)\n",
		graph.Len(), graph.EdgeTotal(), graph.MaxEdges(), graph.Seed())

	return nil
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	dir, err := requireCacheDir()
	if err != nil {
		return err
	}
	list, err := loadDictionary()
	if err != nil {
		return err
	}
	st, err := store.Open(dir, store.WithLogger(log))
	if err != nil {
		return err
	}
	defer st.Close()

	fingerprint := words.Fingerprint(list)
	graph, err := st.Load(fingerprint, flagEdges)
	switch {
	case errors.Is(err, store.ErrNotFound):
		fmt.Fprintln(cmd.OutOrStdout(), "no artifact for this dictionary; run 'lexipath cache build'")

		return nil
	case errors.Is(err, store.ErrStale):
		fmt.Fprintln(cmd.OutOrStdout(), "artifact is stale (dictionary or edge cap changed); run 'lexipath cache build'")

		return nil
	case err != nil:
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dictionary:  %d words of length %d\n", graph.Len(), graph.WordLength())
	fmt.Fprintf(out, "fingerprint: %.16s...\n", fingerprint)
	fmt.Fprintf(out, "edges:       %d total, cap %d per word\n", graph.EdgeTotal(), graph.MaxEdges())
	fmt.Fprintf(out, "seed:        %d\n", graph.Seed())

	return nil
}
