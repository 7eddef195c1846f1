// Package normalizer dispatches raw records to the adapter selected by name and
// validates what it produces.
package normalizer

import (
	"errors"
	"fmt"

	"procnorm/internal/transform"
)

// Processor handles data processing and transformation.
type Processor struct {
	name        string
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a processor for the named transform. An empty or unknown
// name selects passthrough.
func NewProcessor(name string, registry Registry, opts transform.Options) *Processor {
	fn, _ := registry.Lookup(name)

	return &Processor{
		name:        name,
		validator:   NewValidator(),
		transformer: NewTransformer(fn, opts),
	}
}

// Name returns the configured transform name.
func (p *Processor) Name() string {
	return p.name
}

// Passthrough reports whether no adapter is registered under the name.
func (p *Processor) Passthrough() bool {
	return p.transformer.Passthrough()
}

// Process transforms one raw record into the records to emit.
//
// A dropped input returns no records and an error matching transform.ErrDropped.
// Outputs failing validation are dropped individually: the remaining records are
// returned together with a dropped error naming each one.
func (p *Processor) Process(raw []byte) ([]any, error) {
	out, err := p.transformer.Transform(raw)
	if err != nil {
		if transform.IsDropped(err) {
			return nil, err
		}

		return nil, fmt.Errorf("transformation %q failed: %w", p.name, err)
	}

	kept := make([]any, 0, len(out))

	var drops []error

	for i, record := range out {
		if err := p.validator.Validate(record); err != nil {
			drops = append(drops, transform.Drop(fmt.Errorf("output %d: %w", i, err)))
			continue
		}

		kept = append(kept, record)
	}

	return kept, errors.Join(drops...)
}
