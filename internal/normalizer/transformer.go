package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"procnorm/internal/transform"
)

// Transformer errors.
var (
	ErrAdapterPanic  = errors.New("adapter panicked")
	ErrInvalidRecord = errors.New("invalid JSON record")
)

// Transformer binds one adapter to the process-wide options. A Transformer with no
// adapter passes records through unchanged.
type Transformer struct {
	fn   transform.Func
	opts transform.Options
}

// NewTransformer creates a new transformer instance. A nil fn means passthrough.
func NewTransformer(fn transform.Func, opts transform.Options) *Transformer {
	return &Transformer{
		fn:   fn,
		opts: opts,
	}
}

// Passthrough reports whether records are emitted as read.
func (t *Transformer) Passthrough() bool {
	return t.fn == nil
}

// Transform runs the adapter on one raw record. A panic inside the adapter is
// returned as ErrAdapterPanic so one bad record cannot stop the run.
func (t *Transformer) Transform(raw []byte) (out transform.Output, err error) {
	if t.fn == nil {
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		}

		return transform.One(json.RawMessage(buf.Bytes())), nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("%w: %v", ErrAdapterPanic, r)
		}
	}()

	return t.fn(raw, t.opts)
}
