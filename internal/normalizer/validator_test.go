package normalizer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"procnorm/internal/models"
	"procnorm/internal/sources/guatecompras"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		record  any
		wantErr error
	}{
		{name: "valid entity", record: models.Entity{ID: "ab-gt", Name: "AB"}},
		{name: "valid contract", record: models.Contract{ID: "GT_1"}},
		{name: "document", record: models.Document{"id": ""}},
		{name: "raw passthrough", record: json.RawMessage(`{}`)},
		{name: "contract without id", record: models.Contract{}, wantErr: ErrEmptyID},
		{name: "entity without id", record: models.Entity{Name: "Acme"}, wantErr: ErrEmptyID},
		{name: "one letter name", record: models.Entity{ID: "a-gt", Name: "A"}, wantErr: ErrShortName},
		{name: "one multibyte letter", record: models.Entity{ID: "n-gt", Name: "Ñ"}, wantErr: ErrShortName},
		{name: "two multibyte letters", record: models.Entity{ID: "nn-gt", Name: "ÑÑ"}},
		{
			name:    "embedded entity",
			record:  guatecompras.Proveedor{Entity: models.Entity{ID: "x-gt", Name: "X"}},
			wantErr: ErrShortName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.record)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
