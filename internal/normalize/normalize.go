// Package normalize canonicalizes answer strings for comparison. It is the
// single source of truth for answer equality: submission scoring and review
// redisplay both go through Normalize, never through ad-hoc comparisons.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining diacritical marks, and
// recomposes, so "café" and "cafe" canonicalize identically.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw answer: trim, lowercase, strip diacritics,
// drop everything outside [a-z0-9] and whitespace, collapse whitespace runs
// to a single space. Empty input yields the empty string.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Equal reports whether two answers compare equal under normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
