// Package store - badger-backed persistence for the sparse feedback graph.
//
// Artifact layout (one store directory = one published artifact):
//
//	meta         format version, dictionary fingerprint, edge cap K,
//	             sampling seed, word count - the publish marker.
//	w\x00<idx>   word i and its packed edge row.
//
// The meta record is written last: a build interrupted mid-write leaves no
// meta record and the directory reads as absent, never as a half-artifact.
// On load the key is validated before the payload is trusted; a mismatch
// or decode failure surfaces as ErrStale/ErrCorrupt and the caller rebuilds.
package store

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/words"
)

// Sentinel errors for artifact loading.
var (
	// ErrNotFound is returned when no published artifact exists.
	ErrNotFound = errors.New("store: no published cache artifact")

	// ErrStale is returned when the artifact key (version, fingerprint,
	// edge cap) does not match the request.
	ErrStale = errors.New("store: cache artifact key mismatch")

	// ErrCorrupt is returned when a published artifact fails to decode.
	ErrCorrupt = errors.New("store: corrupt cache artifact")
)

// formatVersion guards the on-disk encoding; bumping it invalidates every
// existing artifact through the ErrStale path.
const formatVersion = 1

var metaKey = []byte("meta")

// wordKey returns the record key for word index i.
func wordKey(i int) []byte {
	k := make([]byte, 5)
	k[0] = 'w'
	binary.BigEndian.PutUint32(k[1:], uint32(i))

	return k
}

// Option configures Open.
type Option func(*config)

type config struct {
	inMemory bool
	logger   zerolog.Logger
}

// WithInMemory opens an in-memory store, useful for tests.
func WithInMemory() Option {
	return func(c *config) { c.inMemory = true }
}

// WithLogger routes store and badger-internal events through l.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Store owns one badger directory holding at most one published artifact.
// Loading is safe for concurrent readers; Save is single-writer by contract.
type Store struct {
	db  *badger.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the store directory.
func Open(dir string, opts ...Option) (*Store, error) {
	cfg := config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var bopts badger.Options
	if cfg.inMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: create %s: %w", dir, err)
		}
		bopts = badger.DefaultOptions(dir)
	}
	bopts = bopts.WithLogger(badgerLogger{log: cfg.logger})

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger at %s: %w", dir, err)
	}

	return &Store{db: db, log: cfg.logger}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Save publishes g as the store's artifact, replacing whatever was there.
// Write order implements the atomic-publish contract: the old meta record
// is dropped first, word records go through a write batch, and the new
// meta record is committed last.
func (s *Store) Save(g *cache.Graph, fingerprint string) error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("store: clear previous artifact: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for i := 0; i < g.Len(); i++ {
		if err := wb.Set(wordKey(i), encodeWordRecord(g.Word(i), g.Edges(i))); err != nil {
			return fmt.Errorf("store: stage word %d: %w", i, err)
		}
	}
	if err := wb.Flush(); err != nil {
		return fmt.Errorf("store: flush word records: %w", err)
	}

	meta := encodeMeta(fingerprint, g.MaxEdges(), g.Seed(), g.Len())
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(metaKey, meta)
	}); err != nil {
		return fmt.Errorf("store: publish meta: %w", err)
	}

	s.log.Info().
		Str("fingerprint", fingerprint[:min(12, len(fingerprint))]).
		Int("words", g.Len()).
		Int("max_edges", g.MaxEdges()).
		Int("edges", g.EdgeTotal()).
		Msg("cache artifact published")

	return nil
}

// Load reads the artifact published for (fingerprint, maxEdges). The meta
// key is validated before any payload is decoded: ErrNotFound when nothing
// is published, ErrStale on a key mismatch, ErrCorrupt on decode failure.
func (s *Store) Load(fingerprint string, maxEdges int) (*cache.Graph, error) {
	var g *cache.Graph
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(metaKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("store: read meta: %w", err)
		}

		var m meta
		if err = item.Value(func(val []byte) error {
			var derr error
			m, derr = decodeMeta(val)
			return derr
		}); err != nil {
			return err
		}
		if m.version != formatVersion || m.fingerprint != fingerprint || m.maxEdges != maxEdges {
			return fmt.Errorf("%w: have (v%d %.12s K=%d), want (v%d %.12s K=%d)",
				ErrStale, m.version, m.fingerprint, m.maxEdges, formatVersion, fingerprint, maxEdges)
		}

		list := make([]string, m.wordCount)
		rows := make([][]cache.Edge, m.wordCount)
		for i := 0; i < m.wordCount; i++ {
			item, err = txn.Get(wordKey(i))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: word record %d missing", ErrCorrupt, i)
			}
			if err != nil {
				return fmt.Errorf("store: read word %d: %w", i, err)
			}
			if err = item.Value(func(val []byte) error {
				var derr error
				list[i], rows[i], derr = decodeWordRecord(val)
				return derr
			}); err != nil {
				return err
			}
		}

		g, err = cache.Restore(list, m.maxEdges, m.seed, rows)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupt, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return g, nil
}

// LoadOrBuild returns the published graph for list when the stored key
// (dictionary fingerprint, edge cap) and seed match, and otherwise rebuilds
// and republishes. Stale and corrupt artifacts are never served silently.
func LoadOrBuild(s *Store, list []string, opts ...cache.Option) (*cache.Graph, error) {
	o := cache.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	fingerprint := words.Fingerprint(list)

	g, err := s.Load(fingerprint, o.MaxEdges)
	switch {
	case err == nil:
		if g.Seed() == o.Seed {
			s.log.Debug().Int("words", g.Len()).Msg("cache artifact reused")
			return g, nil
		}
		err = fmt.Errorf("%w: stored seed %d, want %d", ErrStale, g.Seed(), o.Seed)
		fallthrough
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrStale), errors.Is(err, ErrCorrupt):
		s.log.Info().AnErr("reason", err).Msg("rebuilding cache artifact")
	default:
		return nil, err
	}

	g, err = cache.Build(list, opts...)
	if err != nil {
		return nil, err
	}
	if err = s.Save(g, fingerprint); err != nil {
		return nil, err
	}

	return g, nil
}
