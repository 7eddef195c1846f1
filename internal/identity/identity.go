// Package identity derives the deterministic ids that link records across runs and sources.
package identity

import (
	"regexp"
	"strings"

	"procnorm/pkg/lexical"
)

var repeatedDashes = regexp.MustCompile(`-{2,}`)

// GenerateEntityID builds an entity id from its name and country. The entity's own
// country wins over fallbackCountry. Identical inputs always give the identical id.
func GenerateEntityID(name, entityCountry, fallbackCountry string) string {
	country := entityCountry
	if country == "" {
		country = fallbackCountry
	}

	base := strings.TrimSpace(strings.ReplaceAll(name, ".", ""))

	return repeatedDashes.ReplaceAllString(lexical.Slugify(base+" "+country), "-")
}

// ContractID namespaces a source-native contract id by country, e.g. "GT_12345".
// An unresolved (empty) country leaves the id unprefixed.
func ContractID(country, nativeID string) string {
	id := lexical.Transliterate(nativeID)
	prefix := country + "_"

	if country == "" || strings.Contains(id, prefix) {
		return id
	}

	return prefix + id
}
