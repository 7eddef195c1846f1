// Package transform defines the contract every source adapter implements.
package transform

import (
	"errors"
	"fmt"
)

// ErrDropped marks an input that does not represent a resolvable canonical record.
// It is a silent drop, not a failure.
var ErrDropped = errors.New("record dropped")

// Func converts one raw JSON value into zero or more canonical records.
type Func func(raw []byte, opts Options) (Output, error)

// Options carries the process-wide configuration shared by every record.
type Options struct {
	// Country overrides or seeds the contracting country for sources that accept it.
	Country string
	Overlay Overlay
}

// Output is the result of one adapter call. Empty means nothing is emitted.
type Output []any

// One wraps a single record.
func One(v any) Output {
	return Output{v}
}

// Many wraps a sequence of records of the same type.
func Many[T any](vs []T) Output {
	out := make(Output, 0, len(vs))
	for _, v := range vs {
		out = append(out, v)
	}

	return out
}

// Drop wraps reason so that errors.Is(err, ErrDropped) holds.
func Drop(reason error) error {
	return fmt.Errorf("%w: %w", ErrDropped, reason)
}

// IsDropped reports whether err marks a dropped record.
func IsDropped(err error) bool {
	return errors.Is(err, ErrDropped)
}
