package transform

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"procnorm/pkg/lexical"
)

// Text returns r as a trimmed string. Absent and null values are "".
func Text(r gjson.Result) string {
	if !r.Exists() || r.Type == gjson.Null {
		return ""
	}

	return strings.TrimSpace(r.String())
}

// Money reads a monetary value stored either as a JSON number or as a string such
// as "$1,234.50". Absent and malformed values are NaN.
func Money(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Float()
	case gjson.String:
		return lexical.ParseMonetary(r.Str)
	default:
		return math.NaN()
	}
}

// MoneyOrZero is Money with absent and malformed values read as 0.
func MoneyOrZero(r gjson.Result) float64 {
	f := Money(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}

// String decodes a JSON string, number or boolean as text. Null stays "".
type String string

// UnmarshalJSON implements json.Unmarshaler.
func (s *String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = String(strings.TrimSpace(v))

		return nil
	}

	*s = String(data)

	return nil
}

// Number decodes a JSON number or a numeric string. Null, empty and malformed
// values decode as NaN rather than failing the record.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = Number(math.NaN())
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*n = Number(lexical.ParseMonetary(v))

		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*n = Number(math.NaN())
		return nil
	}

	*n = Number(f)

	return nil
}

// Float returns the decoded value. A Number never set by the decoder is 0.
func (n Number) Float() float64 {
	return float64(n)
}
