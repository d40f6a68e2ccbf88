// Package store - binary encoding of artifact records.
//
// Records use varint framing throughout: compact for the common case
// (small indices, small pattern codes) and self-describing enough that any
// truncation or bit rot fails decoding instead of yielding a wrong graph.
package store

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/lexipath/cache"
	"github.com/katalvlaran/lexipath/feedback"
)

// meta is the decoded publish marker.
type meta struct {
	version     int
	fingerprint string
	maxEdges    int
	seed        int64
	wordCount   int
}

// encodeMeta packs the publish marker: version, K, word count, seed,
// fingerprint.
func encodeMeta(fingerprint string, maxEdges int, seed int64, wordCount int) []byte {
	buf := make([]byte, 0, 16+len(fingerprint))
	buf = binary.AppendUvarint(buf, formatVersion)
	buf = binary.AppendUvarint(buf, uint64(maxEdges))
	buf = binary.AppendUvarint(buf, uint64(wordCount))
	buf = binary.AppendVarint(buf, seed)
	buf = binary.AppendUvarint(buf, uint64(len(fingerprint)))
	buf = append(buf, fingerprint...)

	return buf
}

func decodeMeta(buf []byte) (meta, error) {
	var m meta

	version, n := binary.Uvarint(buf)
	if n <= 0 {
		return m, fmt.Errorf("%w: meta version", ErrCorrupt)
	}
	buf = buf[n:]
	maxEdges, n := binary.Uvarint(buf)
	if n <= 0 || maxEdges == 0 {
		return m, fmt.Errorf("%w: meta edge cap", ErrCorrupt)
	}
	buf = buf[n:]
	wordCount, n := binary.Uvarint(buf)
	if n <= 0 {
		return m, fmt.Errorf("%w: meta word count", ErrCorrupt)
	}
	buf = buf[n:]
	seed, n := binary.Varint(buf)
	if n <= 0 {
		return m, fmt.Errorf("%w: meta seed", ErrCorrupt)
	}
	buf = buf[n:]
	fpLen, n := binary.Uvarint(buf)
	if n <= 0 || uint64(len(buf[n:])) != fpLen {
		return m, fmt.Errorf("%w: meta fingerprint", ErrCorrupt)
	}

	m.version = int(version)
	m.maxEdges = int(maxEdges)
	m.wordCount = int(wordCount)
	m.seed = seed
	m.fingerprint = string(buf[n:])

	return m, nil
}

// encodeWordRecord packs one word and its edge row. Neighbor indices are
// delta-encoded against the (sorted) previous entry.
func encodeWordRecord(word string, row []cache.Edge) []byte {
	buf := make([]byte, 0, len(word)+4+3*len(row))
	buf = binary.AppendUvarint(buf, uint64(len(word)))
	buf = append(buf, word...)
	buf = binary.AppendUvarint(buf, uint64(len(row)))
	prev := 0
	for _, e := range row {
		buf = binary.AppendUvarint(buf, uint64(e.To-prev))
		buf = binary.AppendUvarint(buf, uint64(e.Code))
		prev = e.To
	}

	return buf
}

func decodeWordRecord(buf []byte) (string, []cache.Edge, error) {
	wordLen, n := binary.Uvarint(buf)
	if n <= 0 || uint64(len(buf[n:])) < wordLen {
		return "", nil, fmt.Errorf("%w: word record header", ErrCorrupt)
	}
	buf = buf[n:]
	word := string(buf[:wordLen])
	buf = buf[wordLen:]

	count, n := binary.Uvarint(buf)
	if n <= 0 {
		return "", nil, fmt.Errorf("%w: edge count for %q", ErrCorrupt, word)
	}
	buf = buf[n:]

	row := make([]cache.Edge, 0, count)
	to := 0
	for i := uint64(0); i < count; i++ {
		delta, dn := binary.Uvarint(buf)
		if dn <= 0 {
			return "", nil, fmt.Errorf("%w: edge %d of %q", ErrCorrupt, i, word)
		}
		buf = buf[dn:]
		code, cn := binary.Uvarint(buf)
		if cn <= 0 || code > uint64(^feedback.Code(0)) {
			return "", nil, fmt.Errorf("%w: pattern code %d of %q", ErrCorrupt, i, word)
		}
		buf = buf[cn:]

		if i > 0 {
			to += int(delta)
		} else {
			to = int(delta)
		}
		row = append(row, cache.Edge{To: to, Code: feedback.Code(code)})
	}
	if len(buf) != 0 {
		return "", nil, fmt.Errorf("%w: trailing bytes after %q", ErrCorrupt, word)
	}

	return word, row, nil
}
