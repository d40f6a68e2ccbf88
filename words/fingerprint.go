// Package words - dictionary content fingerprinting.
package words

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the SHA-256 hex digest of the newline-joined word
// list. Two dictionaries share a fingerprint exactly when they hold the
// same words in the same canonical order, which makes the digest the cache
// persistence key component.
//
// Complexity: O(total dictionary length).
func Fingerprint(list []string) string {
	sum := sha256.Sum256([]byte(strings.Join(list, "\n")))

	return hex.EncodeToString(sum[:])
}
