// Package stream reads successive JSON values, runs each through a processor and
// writes the results one per line.
package stream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Stream errors.
var (
	ErrDecode = errors.New("malformed JSON input")
	ErrEncode = errors.New("failed to encode record")
)

// Reader decodes successive JSON values regardless of how they are separated.
type Reader struct {
	dec *json.Decoder
}

// NewReader creates a reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: json.NewDecoder(bufio.NewReader(r))}
}

// Next returns the next raw value, or io.EOF when the input is exhausted.
// Malformed input returns ErrDecode; the stream cannot be resumed after it.
func (r *Reader) Next() (json.RawMessage, error) {
	var raw json.RawMessage
	if err := r.dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return raw, nil
}

// Writer writes records separated by newlines. Close writes the final newline,
// so the output is the records joined by "\n" followed by "\n".
type Writer struct {
	out     *bufio.Writer
	buf     bytes.Buffer
	enc     *json.Encoder
	written int
}

// NewWriter creates a writer over w.
func NewWriter(w io.Writer) *Writer {
	sw := &Writer{out: bufio.NewWriter(w)}
	sw.enc = json.NewEncoder(&sw.buf)
	sw.enc.SetEscapeHTML(false)

	return sw
}

// Write encodes one record.
func (w *Writer) Write(record any) error {
	w.buf.Reset()

	if err := w.enc.Encode(record); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	// Encode terminates with a newline; separators are written before each record instead.
	line := bytes.TrimSuffix(w.buf.Bytes(), []byte("\n"))

	if w.written > 0 {
		if err := w.out.WriteByte('\n'); err != nil {
			return err
		}
	}

	if _, err := w.out.Write(line); err != nil {
		return err
	}

	w.written++

	return nil
}

// Written returns the number of records written.
func (w *Writer) Written() int {
	return w.written
}

// Close writes the trailing newline and flushes.
func (w *Writer) Close() error {
	if err := w.out.WriteByte('\n'); err != nil {
		return err
	}

	return w.out.Flush()
}
