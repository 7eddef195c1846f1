package opentender

import (
	"strings"
	"unicode"

	"procnorm/pkg/lexical"
)

// threeLetterPrefixCountry is the country of buyer ids with a three-letter register
// prefix; only the Slovak register publishes those.
const threeLetterPrefixCountry = "SK"

// tedOverride is the source tag that never overrides party countries.
const tedOverride = "ted"

// addressCountry resolves a party's address country name. Blank, numeric,
// placeholder and unknown names are rejected.
func addressCountry(name string) (string, bool) {
	name = strings.TrimSpace(name)

	switch {
	case name == "",
		strings.EqualFold(name, "none"),
		strings.Trim(name, "-–— ") == "",
		strings.IndexFunc(name, func(r rune) bool { return !unicode.IsDigit(r) && r != ' ' }) < 0:
		return "", false
	}

	return lexical.CountryCode(name)
}

// idCountry reads the country encoded in a buyer id: "XX_..." gives XX, a
// three-letter "XXX_..." prefix gives SK, and "hash..." ids carry it at [12,14).
func idCountry(id string) string {
	switch {
	case strings.HasPrefix(id, "hash"):
		if len(id) >= 14 && isASCIILetters(id[12:14]) {
			return strings.ToUpper(id[12:14])
		}
	case len(id) > 3 && id[3] == '_' && isLetters(id[:3]):
		return threeLetterPrefixCountry
	case len(id) > 2 && id[2] == '_' && isLetters(id[:2]):
		return strings.ToUpper(id[:2])
	}

	return ""
}

// overrideCountry returns the configured country when it may replace a buyer's
// inferred country.
func overrideCountry(configured string) (string, bool) {
	configured = strings.TrimSpace(configured)
	if configured == "" || strings.EqualFold(configured, tedOverride) {
		return "", false
	}

	return strings.ToUpper(configured), true
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}

	return s != ""
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i] | 0x20; c < 'a' || c > 'z' {
			return false
		}
	}

	return s != ""
}
