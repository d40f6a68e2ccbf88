// Package store persists sparse feedback graphs in an embedded badger
// database, keyed by (dictionary fingerprint, edge cap K).
//
// What:
//
//   - Open / Close manage one store directory holding at most one
//     published artifact.
//   - Save publishes a graph: word records first, the meta record last, so
//     an interrupted write leaves the directory readable as "absent".
//   - Load validates the meta key (format version, fingerprint, K) before
//     trusting any payload and returns ErrNotFound / ErrStale / ErrCorrupt
//     rather than ever serving a wrong graph.
//   - LoadOrBuild is the caller-facing composition: reuse when the key and
//     seed match, otherwise rebuild and republish.
//
// Concurrency:
//
//	Loading is safe for concurrent readers. Saving is a one-time,
//	single-writer operation per store directory; the meta-last write order
//	is what keeps a concurrent or crashed build from corrupting a
//	previously published artifact.
//
// Logging: store events and badger's internal logger both route through
// an optional zerolog.Logger (WithLogger); the default is a no-op.
package store
