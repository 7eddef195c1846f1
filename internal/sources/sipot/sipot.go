// Package sipot flattens SIPOT tabular exports into records keyed by normalized
// column labels.
package sipot

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"

	"procnorm/internal/models"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

// ErrNotObject is returned when the record is not a JSON object.
var ErrNotObject = errors.New("sipot record is not an object")

const (
	infoKey = "informacion"
	// tableCode marks a tuple whose value is itself a list of rows.
	tableCode = 10
)

// Transform keeps every top-level key except "informacion", whose
// [code, label, value] tuples are flattened into the record. The overlay is
// merged last.
func Transform(raw []byte, opts transform.Options) (transform.Output, error) {
	record := gjson.ParseBytes(raw)
	if !record.IsObject() {
		return nil, ErrNotObject
	}

	doc := models.Document{}

	record.ForEach(func(key, value gjson.Result) bool {
		if key.String() != infoKey {
			doc[key.String()] = json.RawMessage(value.Raw)
		}

		return true
	})

	flatten(record.Get(infoKey), doc)
	opts.Overlay.Apply(doc)

	return transform.One(doc), nil
}

func flatten(tuples gjson.Result, into models.Document) {
	for _, tuple := range tuples.Array() {
		parts := tuple.Array()
		if len(parts) < 3 {
			continue
		}

		key := lexical.NormalizeKey(parts[1].String())
		if key == "" {
			continue
		}

		if parts[0].Int() == tableCode && parts[2].IsArray() {
			rows := make([]models.Document, 0, len(parts[2].Array()))

			for _, row := range parts[2].Array() {
				sub := models.Document{}
				flatten(row, sub)
				rows = append(rows, sub)
			}

			into[key] = rows

			continue
		}

		into[key] = leaf(parts[2], key)
	}
}

func leaf(value gjson.Result, key string) any {
	switch value.Type {
	case gjson.String:
		return lexical.DetectAndConvert(value.Str, key)
	case gjson.Number:
		return value.Float()
	case gjson.True, gjson.False:
		return value.Bool()
	case gjson.Null:
		return nil
	default:
		return json.RawMessage(value.Raw)
	}
}
