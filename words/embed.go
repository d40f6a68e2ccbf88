// Package words - embedded fallback dictionary.
package words

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed wordlist.txt
var embeddedList string

var (
	defaultOnce sync.Once
	defaultList []string
)

// Default returns the small embedded 5-letter dictionary, so the engine
// runs with zero setup when no word-list file is supplied. The returned
// slice is a fresh copy on every call.
func Default() []string {
	defaultOnce.Do(func() {
		list, err := Parse(strings.NewReader(embeddedList))
		if err != nil {
			// The embedded list is validated by tests; a parse failure here
			// is a build defect, not a runtime condition.
			panic(err)
		}
		defaultList = list
	})

	out := make([]string, len(defaultList))
	copy(out, defaultList)

	return out
}
