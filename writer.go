package pixcodec

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// Writer embeds a byte stream into a surface. It tracks the first error that
// occurs; after an error all subsequent operations become no-ops, so encoding
// code can issue a whole sequence of writes and check Err once at the end.
//
// A Writer assumes exclusive access to its surface for the duration of the
// write pass and performs no locking. A Writer whose multi-field operation
// failed holds a cursor position inconsistent with the stream; discard it.
type Writer struct {
	cursor
	err error
}

var (
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
)

// NewWriter creates a Writer positioned at byte 0 of the surface.
func NewWriter(s Surface) (*Writer, error) {
	cur, err := newCursor(s)
	if err != nil {
		return nil, err
	}
	return &Writer{cursor: cur}, nil
}

func (w *Writer) Err() error { return w.err }

// Result returns the total bytes written and the final error state.
func (w *Writer) Result() (int64, error) { return w.Count(), w.err }

// setError records the first non-nil error. This preserves the root cause of
// a failure chain instead of a later, less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// WriteByte writes one byte into the channel the cursor resolves to, leaving
// the pixel's other channels untouched (read-modify-write of the pixel).
func (w *Writer) WriteByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	x, y, ch, err := w.locate()
	if err != nil {
		w.err = err
		return err
	}
	px := w.surface.PixelAt(x, y)
	px[ch] = b
	w.surface.SetPixel(x, y, px)
	w.next++
	return nil
}

// Write implements io.Writer for embedding raw payload bytes.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	for i, b := range p {
		if err := w.WriteByte(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// --- Primitive Write Operations ---

// WriteInt32 writes v as 4 bytes, big-endian two's complement. Values that do
// not fit 32 bits truncate at the caller's int32 conversion site, not here.
func (w *Writer) WriteInt32(v int32) {
	if w.err != nil {
		return
	}
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, _ = w.Write(buf[:])
}

// WriteInt64 writes v as 8 bytes, big-endian two's complement.
func (w *Writer) WriteInt64(v int64) {
	if w.err != nil {
		return
	}
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, _ = w.Write(buf[:])
}

// WriteString writes an 8-byte character count followed by one byte per code
// point. Every code point must fit in 0-255; the whole string is validated up
// front, so a rejected string never reaches the surface.
func (w *Writer) WriteString(s string) {
	if w.err != nil {
		return
	}
	for i, r := range s {
		if !fitsByte(r) {
			w.err = fmt.Errorf("%w: %q at index %d", ErrEncodingRange, r, i)
			return
		}
	}
	w.WriteInt64(int64(utf8.RuneCountInString(s)))
	for _, r := range s {
		if w.err != nil {
			return
		}
		_ = w.WriteByte(byte(r))
	}
}

// WriteObject delegates to the value's own encoding routine.
func (w *Writer) WriteObject(m Marshaler) {
	if w.err != nil || m == nil {
		return
	}
	w.setError(m.MarshalSurface(w))
}
