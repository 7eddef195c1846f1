package lexical

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMonetary(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "$1,234.50", want: 1234.5},
		{input: "$-45.00", want: -45},
		{input: "1000", want: 1000},
		{input: " $ 12,000 ", want: 12000},
		{input: "0.75", want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseMonetary(tt.input), 1e-9)
		})
	}
}

func TestParseMonetary_Malformed(t *testing.T) {
	for _, input := range []string{"", "$", "N/A", "12.5.3", "doce"} {
		assert.True(t, math.IsNaN(ParseMonetary(input)), "input %q", input)
	}
}
