package normalizer

import (
	"errors"
	"unicode/utf8"
)

// minNameLength is the shortest entity name that identifies anything.
const minNameLength = 2

// Validation errors. Both make the processor drop the record.
var (
	ErrEmptyID   = errors.New("record has an empty id")
	ErrShortName = errors.New("entity name is shorter than 2 characters")
)

type identified interface {
	RecordID() string
}

type named interface {
	DisplayName() string
}

// Validator checks canonical records before they are emitted. Schema-less
// records (passthrough, PNT, SIPOT) carry neither an id nor a name and always pass.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks if a record meets requirements.
func (v *Validator) Validate(record any) error {
	if r, ok := record.(identified); ok && r.RecordID() == "" {
		return ErrEmptyID
	}

	if r, ok := record.(named); ok && utf8.RuneCountInString(r.DisplayName()) < minNameLength {
		return ErrShortName
	}

	return nil
}
