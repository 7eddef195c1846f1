// Package pnt maps records of Mexico's Plataforma Nacional de Transparencia.
// The overlay "folder" tag selects which disclosure layout a record follows.
package pnt

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"procnorm/internal/models"
	"procnorm/internal/transform"
	"procnorm/pkg/lexical"
)

// ErrMissingPeriod is the drop reason for records with no reporting period.
var ErrMissingPeriod = errors.New("missing reporting period")

var periodKeys = []string{"periodoreporta", "periodoinforma"}

// Transform maps one PNT record. Records with no reporting period are dropped.
// The overlay is merged last, so its keys replace mapped ones.
func Transform(raw []byte, opts transform.Options) (transform.Output, error) {
	record := gjson.ParseBytes(raw)

	period := firstText(record, periodKeys)
	if period == "" {
		return nil, transform.Drop(ErrMissingPeriod)
	}

	var doc models.Document

	if fields, ok := layouts[opts.Overlay.Folder()]; ok {
		doc = mapFields(record, period, fields)
	} else {
		doc = summarize(record, raw)
	}

	opts.Overlay.Apply(doc)

	return transform.One(doc), nil
}

func base(record gjson.Result) models.Document {
	return models.Document{
		"id":     firstText(record, []string{"idregistro", "_id", "id"}),
		"sujeto": firstText(record, []string{"sujetoobligado", "nombresujetoobligado"}),
		"date":   lexical.ParseSlashDate(firstText(record, []string{"fechaactualizacion", "fechavalidacion"})),
	}
}

// summarize is the reduced shape for folders with no richer layout.
func summarize(record gjson.Result, raw []byte) models.Document {
	doc := base(record)
	doc["size"] = compactSize(raw)

	return doc
}

func mapFields(record gjson.Result, period string, fields []field) models.Document {
	doc := base(record)
	doc["periodo"] = period

	for _, f := range fields {
		doc[f.out] = f.read(record)
	}

	return doc
}

func compactSize(raw []byte) int {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return len(raw)
	}

	return buf.Len()
}

func firstText(record gjson.Result, keys []string) string {
	for _, key := range keys {
		if v := transform.Text(record.Get(key)); v != "" {
			return v
		}
	}

	return ""
}

func joinedText(record gjson.Result, keys []string) string {
	parts := make([]string, 0, len(keys))

	for _, key := range keys {
		if v := transform.Text(record.Get(key)); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, " ")
}
