// Package normalize canonicalizes noisy spreadsheet text so keys compare
// reliably. Values entered by hand carry full-width compatibility characters,
// zero-width runes pasted from chat clients, and stray surrounding whitespace;
// Clean folds all of that away without touching the visible content.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// zeroWidth is the set of zero-width and BOM-class runes stripped by Clean.
var zeroWidth = map[rune]bool{
	'­': true, // soft hyphen
	'᠎': true, // mongolian vowel separator
	'​': true, // zero width space
	'‌': true, // zero width non-joiner
	'‍': true, // zero width joiner
	'⁠': true, // word joiner
	'\uFEFF': true, // zero width no-break space / BOM
}

// Clean returns the canonical form of a raw text key:
// NFKC compatibility normalization, zero-width rune stripping, and
// whitespace trimming at both ends. Clean is pure and idempotent:
// Clean(Clean(x)) == Clean(x).
func Clean(s string) string {
	if s == "" {
		return s
	}

	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if zeroWidth[r] {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// StripSpace removes every Unicode whitespace rune from s. It is used for
// whitespace-insensitive comparison of a raw value against its cleaned form,
// to detect whether Clean altered actual content rather than just spacing.
func StripSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Changed reports whether cleaning altered the whitespace-insensitive content
// of raw, i.e. whether Clean removed or folded something beyond spacing.
func Changed(raw string) bool {
	return StripSpace(raw) != StripSpace(Clean(raw))
}
