package utils

import (
	"strings"
)

// NormalizeName canonicalizes an item name for storage and comparison:
// surrounding whitespace is trimmed and the result is lowercased. An empty
// result means the name is absent and must be discarded by the caller.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
