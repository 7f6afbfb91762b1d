// Package username implements the username generation pipeline:
// word filtering, cosmetic formatting, and batch orchestration.
package username

// DefaultMinLen is the minimum word length accepted by the filter.
const DefaultMinLen = 3

// IsValid reports whether a word qualifies as a username base: every
// character within 7-bit ASCII and length of at least minLen.
func IsValid(word string, minLen int) bool {
	if len(word) < minLen {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] >= 0x80 {
			return false
		}
	}
	return true
}
