package guatecompras

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"procnorm/internal/transform"
)

// Legacy passes a legacy OCDS record through, removing the first space of each
// contracts[].dateSigned value. Numbers keep their original literals.
func Legacy(raw []byte, _ transform.Options) (transform.Output, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode legacy record: %w", err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return transform.One(doc), nil
	}

	contracts, _ := obj["contracts"].([]any)
	for _, c := range contracts {
		contract, ok := c.(map[string]any)
		if !ok {
			continue
		}

		if signed, ok := contract["dateSigned"].(string); ok {
			contract["dateSigned"] = strings.Replace(signed, " ", "", 1)
		}
	}

	return transform.One(obj), nil
}
