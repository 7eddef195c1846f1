package lexical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCountryName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Hungary", want: "HU"},
		{input: "Magyarország", want: "HU"},
		{input: "MAGYARORSZAG", want: "HU"},
		{input: "Србија", want: "RS"},
		{input: "Srbija", want: "RS"},
		{input: "Czech Republic", want: "CZ"},
		{input: "México", want: "MX"},
		{input: "  guatemala ", want: "GT"},
		{input: "sk", want: "SK"},
		{input: "Atlantis", want: "Atlantis"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCountryName(tt.input))
		})
	}
}

func TestIsCountryCode(t *testing.T) {
	assert.True(t, IsCountryCode("HU"))
	assert.True(t, IsCountryCode("GT"))
	assert.False(t, IsCountryCode("hu"))
	assert.False(t, IsCountryCode("XX"))
	assert.False(t, IsCountryCode("HUN"))
	assert.False(t, IsCountryCode(""))
}

func TestCountryCode(t *testing.T) {
	code, ok := CountryCode("Slovenija")
	assert.True(t, ok)
	assert.Equal(t, "SI", code)

	code, ok = CountryCode("none")
	assert.False(t, ok)
	assert.Equal(t, "", code)
}
