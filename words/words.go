// Package words - dictionary ingestion and normalization.
//
// Every word that reaches the search core passes through this boundary:
// trimming, uppercasing, alphabet and length validation, deduplication.
// The canonical candidate order is the file order after dedup, and it is
// load-bearing: the search engine's branching determinism relies on it.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for dictionary ingestion.
var (
	// ErrInvalidWord is returned for a word with a non-alphabet character,
	// an inconsistent length, or a length outside [1, MaxLength].
	ErrInvalidWord = errors.New("words: invalid word")

	// ErrEmptyDictionary is returned when parsing yields no words at all.
	ErrEmptyDictionary = errors.New("words: empty dictionary")
)

// MaxLength bounds word length so that every feedback pattern code
// (base-3, 3^length values) fits in 16 bits.
const MaxLength = 10

// Load reads a word list from path and returns the normalized, deduplicated
// dictionary in file order. Plain newline lists and single-column CSV files
// (optionally with a "word" header line) are accepted.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: parse %s: %w", path, err)
	}

	return list, nil
}

// Parse reads a word list from r. Each line may carry one word or a
// comma-separated row of words; blank lines and '#' comment lines are
// skipped, as is a leading "word" CSV header. All words must share one
// length, fixed by the first word seen.
//
// Complexity: O(total input length).
func Parse(r io.Reader) ([]string, error) {
	var (
		out     []string
		seen    = make(map[string]struct{})
		length  int
		scanner = bufio.NewScanner(r)
		first   = true
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first && strings.EqualFold(line, "word") {
			// single-column CSV header
			first = false
			continue
		}
		first = false

		for _, field := range strings.Split(line, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			w, err := Normalize(field)
			if err != nil {
				return nil, err
			}
			if length == 0 {
				length = len(w)
			} else if len(w) != length {
				return nil, fmt.Errorf("%w: %q has length %d, dictionary uses %d",
					ErrInvalidWord, w, len(w), length)
			}
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyDictionary
	}

	return out, nil
}

// Normalize trims raw, uppercases it and validates the A..Z alphabet and the
// [1, MaxLength] length bound.
func Normalize(raw string) (string, error) {
	w := strings.ToUpper(strings.TrimSpace(raw))
	if len(w) == 0 || len(w) > MaxLength {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, raw)
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", fmt.Errorf("%w: %q has non-alphabet character %q", ErrInvalidWord, raw, w[i])
		}
	}

	return w, nil
}
