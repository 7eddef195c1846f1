// Package lexical provides the string, number and date normalizers shared by every source adapter.
package lexical

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gosimple/slug"
	"github.com/gosimple/unidecode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripDiacritics removes combining marks after canonical decomposition (á -> a, ñ -> n).
func StripDiacritics(s string) string {
	// A chain carries internal buffers, so it is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}

	return out
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate truncates s to at most maxLength bytes, appending an ellipsis when cut.
// The cut never splits a multi-byte character.
func Truncate(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}

	cut := maxLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}

// Transliterate converts accented and non-Latin text to a plain ASCII approximation.
func Transliterate(s string) string {
	return NormalizeWhitespace(unidecode.Unidecode(s))
}

// Slugify lowercases s and turns every run of non-alphanumerics into a single hyphen.
func Slugify(s string) string {
	return slug.Make(strings.ReplaceAll(s, "_", "-"))
}
