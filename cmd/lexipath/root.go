package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/cache/store"
	"github.com/katalvlaran/lexipath/words"
)

// Environment variables read after godotenv; flags override them.
const (
	envDict     = "LEXIPATH_DICT"
	envCacheDir = "LEXIPATH_CACHE_DIR"
	envLogLevel = "LOG_LEVEL"
)

var (
	log zerolog.Logger

	flagDict     string
	flagCacheDir string
	flagEdges    int
	flagSeed     int64
)

var rootCmd = &cobra.Command{
	Use:   "lexipath",
	Short: "Word-guessing solver, game, and evaluation harness",
	Long: `lexipath treats the classic word-guessing game as graph search.

The solver explains how it reaches a hidden word under BFS, DFS,
uniform-cost search, or A* with pluggable cost and heuristic models;
the harness compares those configurations over a sampled target set.

Configuration comes from flags, the environment, or a .env file:
  LEXIPATH_DICT       dictionary file (newline or CSV); embedded list if unset
  LEXIPATH_CACHE_DIR  feedback-graph cache directory; built in memory if unset
  LOG_LEVEL           zerolog level (debug, info, warn, error)`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagDict, "dict", "", "dictionary file (overrides "+envDict+")")
	pf.StringVar(&flagCacheDir, "cache-dir", "", "feedback-graph cache directory (overrides "+envCacheDir+")")
	pf.IntVar(&flagEdges, "edges", cache.DefaultMaxEdges, "max cached feedback edges per word")
	pf.Int64Var(&flagSeed, "seed", 42, "seed for feedback-edge sampling")
}

// setup loads .env, then configures the process logger.
func setup(cmd *cobra.Command, args []string) error {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if raw := os.Getenv(envLogLevel); raw != "" {
		parsed, err := zerolog.ParseLevel(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", envLogLevel, err)
		}
		level = parsed
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	return nil
}

// loadDictionary reads the configured word list, falling back to the
// embedded one.
func loadDictionary() ([]string, error) {
	path := flagDict
	if path == "" {
		path = os.Getenv(envDict)
	}
	if path == "" {
		list := words.Default()
		log.Debug().Int("words", len(list)).Msg("using embedded dictionary")

		return list, nil
	}
	list, err := words.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("words", len(list)).Msg("dictionary loaded")

	return list, nil
}

// cacheDir resolves the persistent cache location, empty if unset.
func cacheDir() string {
	if flagCacheDir != "" {
		return flagCacheDir
	}

	return os.Getenv(envCacheDir)
}

// loadGraph builds or restores the feedback graph. With no cache
// directory configured it builds in memory; otherwise it reuses the
// persisted artifact when dictionary, edge cap, and seed still match.
// The returned closer releases the backing store.
func loadGraph(list []string) (*cache.Graph, func(), error) {
	copts := []cache.Option{cache.WithMaxEdges(flagEdges), cache.WithSeed(flagSeed)}

	dir := cacheDir()
	if dir == "" {
		g, err := cache.Build(list, copts...)
		if err != nil {
			return nil, nil, err
		}

		return g, func() {}, nil
	}

	st, err := store.Open(dir, store.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	g, err := store.LoadOrBuild(st, list, copts...)
	if err != nil {
		_ = st.Close()

		return nil, nil, err
	}

	return g, func() { _ = st.Close() }, nil
}
