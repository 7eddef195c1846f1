package normalizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procnorm/internal/transform"
)

func TestTransformer_Passthrough(t *testing.T) {
	tr := NewTransformer(nil, transform.Options{})
	assert.True(t, tr.Passthrough())

	out, err := tr.Transform([]byte("{\n  \"a\": 1.50,\n  \"b\": \"<x>\"\n}"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, json.RawMessage(`{"a":1.50,"b":"<x>"}`), out[0])
}

func TestTransformer_PassthroughInvalid(t *testing.T) {
	_, err := NewTransformer(nil, transform.Options{}).Transform([]byte(`{"a":`))
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestTransformer_ForwardsOptions(t *testing.T) {
	var got transform.Options

	fn := func(_ []byte, opts transform.Options) (transform.Output, error) {
		got = opts
		return transform.One("ok"), nil
	}

	opts := transform.Options{Country: "hu", Overlay: transform.Overlay{"folder": "x"}}
	out, err := NewTransformer(fn, opts).Transform([]byte(`{}`))
	require.NoError(t, err)

	assert.Equal(t, transform.Output{"ok"}, out)
	assert.Equal(t, opts, got)
}

func TestTransformer_RecoversPanic(t *testing.T) {
	fn := func(_ []byte, _ transform.Options) (transform.Output, error) {
		var m map[string]int
		m["boom"]++

		return nil, nil
	}

	out, err := NewTransformer(fn, transform.Options{}).Transform([]byte(`{}`))
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrAdapterPanic)
	assert.False(t, transform.IsDropped(err))
}

func TestTransformer_PropagatesErrors(t *testing.T) {
	sentinel := errors.New("bad shape")
	fn := func(_ []byte, _ transform.Options) (transform.Output, error) {
		return nil, sentinel
	}

	_, err := NewTransformer(fn, transform.Options{}).Transform([]byte(`{}`))
	assert.ErrorIs(t, err, sentinel)
}
