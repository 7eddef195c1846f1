package stream

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"procnorm/internal/logger"
	"procnorm/internal/transform"
)

type processorFunc func(raw []byte) ([]any, error)

func (f processorFunc) Process(raw []byte) ([]any, error) {
	return f(raw)
}

func echo(raw []byte) ([]any, error) {
	return []any{map[string]string{"raw": string(raw)}}, nil
}

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader(`{"a":1}{"b":2}` + "\n\n  [3]\n\"s\" 4"))

	var got []string
	for {
		raw, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)
		got = append(got, string(raw))
	}

	assert.Equal(t, []string{`{"a":1}`, `{"b":2}`, `[3]`, `"s"`, `4`}, got)
}

func TestReader_Malformed(t *testing.T) {
	r := NewReader(strings.NewReader(`{"a":1} {"b":`))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.ErrorIs(t, err, ErrDecode)
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.Write(map[string]string{"a": "<b>"}))
	require.NoError(t, w.Write([]int{1, 2}))
	require.NoError(t, w.Close())

	assert.Equal(t, "{\"a\":\"<b>\"}\n[1,2]\n", buf.String())
	assert.Equal(t, 2, w.Written())
}

func TestWriter_Empty(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.Close())
	assert.Equal(t, "\n", buf.String())
}

func TestWriter_Unencodable(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	assert.ErrorIs(t, w.Write(math.Inf(1)), ErrEncode)
	assert.Equal(t, 0, w.Written())
}

func TestRun(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewWithCore(core)

	proc := processorFunc(func(raw []byte) ([]any, error) {
		switch string(raw) {
		case `"drop"`:
			return nil, transform.Drop(errors.New("no period"))
		case `"fail"`:
			return nil, errors.New("boom")
		case `"many"`:
			return []any{1, 2, 3}, nil
		case `"partial"`:
			return []any{"kept"}, transform.Drop(errors.New("short name"))
		case `"nan"`:
			return []any{math.NaN(), "after"}, nil
		default:
			return []any{string(raw)}, nil
		}
	})

	input := `"a" "drop" "many" "fail" "partial" "nan"`

	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader(input), &out, proc, log)
	require.NoError(t, err)

	assert.Equal(t, "\"\\\"a\\\"\"\n1\n2\n3\n\"kept\"\n\"after\"\n", out.String())
	assert.Equal(t, Stats{Read: 6, Emitted: 6, Dropped: 2, Failed: 2}, stats)

	assert.Equal(t, 2, logs.FilterMessage("record dropped").Len())
	assert.Equal(t, 1, logs.FilterMessage("record failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("record not encodable").Len())
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader("  \n"), &out, processorFunc(echo), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "\n", out.String())
	assert.Equal(t, Stats{}, stats)
}

func TestRun_MalformedStops(t *testing.T) {
	var out bytes.Buffer

	stats, err := Run(context.Background(), strings.NewReader(`{"a":1} {oops} {"b":2}`), &out, processorFunc(echo), logger.Nop())
	assert.ErrorIs(t, err, ErrDecode)

	assert.Equal(t, 1, stats.Read)
	assert.Equal(t, "{\"raw\":\"{\\\"a\\\":1}\"}\n", out.String())
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer

	stats, err := Run(ctx, strings.NewReader(`{"a":1}`), &out, processorFunc(echo), logger.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, stats.Read)
	assert.Equal(t, "\n", out.String())
}
