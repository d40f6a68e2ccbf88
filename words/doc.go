// Package words loads, normalizes and fingerprints fixed-length word
// dictionaries for the search core.
//
// What:
//
//   - Load / Parse ingest newline lists or single-column CSV files,
//     normalizing (trim, uppercase), validating (A..Z alphabet, one shared
//     length, at most MaxLength letters) and deduplicating while preserving
//     file order.
//   - Normalize validates a single raw token.
//   - Fingerprint digests a dictionary (SHA-256 hex of the newline-joined
//     list); it keys persisted feedback caches together with the edge cap.
//   - Default returns a small embedded fallback dictionary.
//
// Contract:
//
//	Invalid words are rejected here, at the ingestion boundary, and never
//	reach the search engine. The canonical order produced here is
//	load-bearing: branching selection and therefore whole solve runs are
//	deterministic only relative to it.
//
// Errors: ErrInvalidWord, ErrEmptyDictionary, plus wrapped I/O errors
// from Load.
package words
