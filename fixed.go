package pixcodec

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. A concurrent map keeps it safe across goroutines using
// different surfaces.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed wraps any struct composed of fixed-size fields as a Codec,
// eliminating hand-written field-by-field encode/decode for simple records.
// The wire form is the struct's fields big-endian in declaration order.
//
// Constraint: Payload must not contain variable-size fields like slices,
// maps, or strings; those fail with ErrNotFixedSize.
type Fixed[Payload any] struct {
	Payload Payload
}

var (
	_ Codec = (*Fixed[struct{}])(nil)
	_ Sizer = (*Fixed[struct{}])(nil)
)

// Size returns the encoded size of Payload in bytes, or -1 if it is not a
// fixed-size struct. The result is cached per type.
func (c *Fixed[Payload]) Size() int {
	t := reflect.TypeOf((*Payload)(nil)).Elem()
	if size, ok := sizeCache.Load(t); ok {
		return size
	}
	size := binary.Size(&c.Payload)
	sizeCache.Store(t, size)
	return size
}

// MarshalSurface encodes the payload and embeds it as raw bytes.
func (c *Fixed[Payload]) MarshalSurface(w *Writer) error {
	size := c.Size()
	if size < 0 {
		err := fmt.Errorf("%w: %T", ErrNotFixedSize, c.Payload)
		w.setError(err)
		return err
	}
	buf := make([]byte, size)
	if _, err := binary.Encode(buf, binary.BigEndian, &c.Payload); err != nil {
		w.setError(err)
		return err
	}
	_, err := w.Write(buf)
	return err
}

// UnmarshalSurface extracts Size() bytes and decodes them into the payload.
func (c *Fixed[Payload]) UnmarshalSurface(r *Reader) error {
	size := c.Size()
	if size < 0 {
		err := fmt.Errorf("%w: %T", ErrNotFixedSize, c.Payload)
		r.setError(err)
		return err
	}
	buf := make([]byte, size)
	if !r.readFull(buf) {
		return r.err
	}
	if _, err := binary.Decode(buf, binary.BigEndian, &c.Payload); err != nil {
		r.setError(err)
		return err
	}
	return nil
}
