package lexical

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var moneyReplacer = strings.NewReplacer("$", "", ",", "")

// ParseMonetary strips "$" and "," and parses the rest as a number.
// Malformed input yields NaN; callers pick the default or omit the field.
func ParseMonetary(s string) float64 {
	clean := strings.TrimSpace(moneyReplacer.Replace(s))

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return math.NaN()
	}

	return d.InexactFloat64()
}
