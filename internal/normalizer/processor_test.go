package normalizer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procnorm/internal/models"
	"procnorm/internal/transform"
)

var errNoAnchor = errors.New("no anchor")

func testRegistry() Registry {
	return Registry{
		"entities": func(_ []byte, _ transform.Options) (transform.Output, error) {
			return transform.Many([]models.Entity{
				{ID: "acme-gt", Name: "Acme"},
				{ID: "x-gt", Name: "X"},
				{ID: "beta-gt", Name: "Beta"},
			}), nil
		},
		"drop": func(_ []byte, _ transform.Options) (transform.Output, error) {
			return nil, transform.Drop(errNoAnchor)
		},
		"fail": func(_ []byte, _ transform.Options) (transform.Output, error) {
			return nil, errors.New("unexpected shape")
		},
		"empty": func(_ []byte, _ transform.Options) (transform.Output, error) {
			return nil, nil
		},
	}
}

func TestNewProcessor(t *testing.T) {
	p := NewProcessor("entities", testRegistry(), transform.Options{})
	assert.Equal(t, "entities", p.Name())
	assert.False(t, p.Passthrough())

	assert.True(t, NewProcessor("", testRegistry(), transform.Options{}).Passthrough())
	assert.True(t, NewProcessor("unknown", testRegistry(), transform.Options{}).Passthrough())
}

func TestProcessor_Process(t *testing.T) {
	t.Run("partial drop keeps valid outputs", func(t *testing.T) {
		out, err := NewProcessor("entities", testRegistry(), transform.Options{}).Process([]byte(`{}`))

		require.Len(t, out, 2)
		assert.Equal(t, "Acme", out[0].(models.Entity).Name)
		assert.Equal(t, "Beta", out[1].(models.Entity).Name)
		assert.True(t, transform.IsDropped(err))
		assert.ErrorIs(t, err, ErrShortName)
		assert.Contains(t, err.Error(), "output 1")
	})

	t.Run("dropped input", func(t *testing.T) {
		out, err := NewProcessor("drop", testRegistry(), transform.Options{}).Process([]byte(`{}`))

		assert.Empty(t, out)
		assert.True(t, transform.IsDropped(err))
		assert.ErrorIs(t, err, errNoAnchor)
	})

	t.Run("failure names the transform", func(t *testing.T) {
		out, err := NewProcessor("fail", testRegistry(), transform.Options{}).Process([]byte(`{}`))

		assert.Empty(t, out)
		require.Error(t, err)
		assert.False(t, transform.IsDropped(err))
		assert.Contains(t, err.Error(), `transformation "fail" failed`)
	})

	t.Run("no output", func(t *testing.T) {
		out, err := NewProcessor("empty", testRegistry(), transform.Options{}).Process([]byte(`{}`))

		assert.Empty(t, out)
		assert.NoError(t, err)
	})

	t.Run("unknown name passes through", func(t *testing.T) {
		out, err := NewProcessor("nope", testRegistry(), transform.Options{}).Process([]byte(`{ "k" : [1, 2] }`))

		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, json.RawMessage(`{"k":[1,2]}`), out[0])
	})
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	names := r.Names()
	assert.Len(t, names, 16)
	assert.IsIncreasing(t, names)

	for _, name := range names {
		fn, ok := r.Lookup(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}

	_, ok := r.Lookup("guatecompras-unknown")
	assert.False(t, ok)
}

func TestDefaultRegistry_Dispatch(t *testing.T) {
	p := NewProcessor("pnt", DefaultRegistry(), transform.Options{Overlay: transform.Overlay{"status": "verified"}})

	out, err := p.Process([]byte(`{"periodoreporta":"2021","estatus":"draft"}`))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "verified", out[0].(models.Document)["status"])

	out, err = p.Process([]byte(`{"estatus":"draft"}`))
	assert.Empty(t, out)
	assert.True(t, transform.IsDropped(err))
}
