package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripDiacritics(t *testing.T) {
	assert.Equal(t, "Informacion publica de oficio", StripDiacritics("Información pública de oficio"))
	assert.Equal(t, "nino", StripDiacritics("niño"))
	assert.Equal(t, "plain", StripDiacritics("plain"))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "", NormalizeWhitespace("   "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long...", Truncate("longer text", 4))
	assert.Equal(t, "a...", Truncate("añb", 2))
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "Srbija", Transliterate("Србија"))
	assert.Equal(t, "Magyarorszag", Transliterate("Magyarország"))
	assert.Equal(t, "Construccion de puente", Transliterate("Construcción  de   puente"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "municipalidad-de-mixco-gt", Slugify("Municipalidad de Mixco GT"))
	assert.Equal(t, "ana-maria-lopez", Slugify("Ana_María  López"))
	assert.Equal(t, "a-b", Slugify("a -- b"))
}
