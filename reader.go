package pixcodec

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Reader extracts a byte stream from a surface. Like Writer it latches the
// first error and turns every later operation into a no-op.
//
// The stream carries no type tags: the read sequence must mirror the write
// sequence that produced it, in order and in type. A mismatched sequence
// surfaces as garbage values or a downstream ErrOutOfBounds/ErrCorruptLength,
// not as a dedicated error.
type Reader struct {
	cursor
	err error
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
)

// NewReader creates a Reader positioned at byte 0 of the surface.
func NewReader(s Surface) (*Reader, error) {
	cur, err := newCursor(s)
	if err != nil {
		return nil, err
	}
	return &Reader{cursor: cur}, nil
}

func (r *Reader) Err() error { return r.err }

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) { return r.Count(), r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// ReadByte returns the channel value the cursor resolves to.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	x, y, ch, err := r.locate()
	if err != nil {
		r.err = err
		return 0, err
	}
	px := r.surface.PixelAt(x, y)
	r.next++
	return px[ch], nil
}

// Read implements io.Reader for extracting raw payload bytes. At exact
// capacity it returns io.EOF rather than ErrOutOfBounds so io.Copy and
// io.ReadAll terminate cleanly; the typed read operations keep the distinct
// bounds error.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) == 0 {
		return 0, nil
	}
	rem := r.Remaining()
	if rem == 0 {
		return 0, io.EOF
	}
	if len(p) > rem {
		p = p[:rem]
	}
	for i := range p {
		b, err := r.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

// Seek repositions the cursor. The surface is randomly addressable, so both
// directions work; the target must stay within [0, Capacity()].
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	if r.err != nil {
		return r.Count(), r.err
	}
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = int64(r.next) + offset
	case io.SeekEnd:
		target = int64(r.Capacity()) + offset
	default:
		r.err = fmt.Errorf("%w: value %d", ErrInvalidWhence, whence)
		return int64(r.next), r.err
	}
	if target < 0 || target > int64(r.Capacity()) {
		r.err = fmt.Errorf("%w: target %d outside [0, %d]", ErrInvalidSeek, target, r.Capacity())
		return int64(r.next), r.err
	}
	r.next = int(target)
	return target, nil
}

// readFull is an internal helper to fill dst or latch the failure.
func (r *Reader) readFull(dst []byte) bool {
	if r.err != nil {
		return false
	}
	for i := range dst {
		b, err := r.ReadByte()
		if err != nil {
			return false
		}
		dst[i] = b
	}
	return true
}

// --- Primitive Read Operations ---

func (r *Reader) ReadInt32(dest *int32) {
	var buf [4]byte
	if r.readFull(buf[:]) {
		*dest = int32(binary.BigEndian.Uint32(buf[:]))
	}
}

func (r *Reader) ReadInt64(dest *int64) {
	var buf [8]byte
	if r.readFull(buf[:]) {
		*dest = int64(binary.BigEndian.Uint64(buf[:]))
	}
}

// readLength reads an 8-byte prefix and validates it against what one byte
// per element can still fit on the surface, failing before any allocation.
func (r *Reader) readLength() (int, bool) {
	var n int64
	r.ReadInt64(&n)
	if r.err != nil {
		return 0, false
	}
	if n < 0 {
		r.err = fmt.Errorf("%w: %d", ErrCorruptLength, n)
		return 0, false
	}
	if n > int64(r.Remaining()) {
		r.err = fmt.Errorf("%w: length prefix %d exceeds %d remaining bytes",
			ErrOutOfBounds, n, r.Remaining())
		return 0, false
	}
	return int(n), true
}

// ReadString reads a length-prefixed string, rebuilding one code point per byte.
func (r *Reader) ReadString(dest *string) {
	n, ok := r.readLength()
	if !ok {
		return
	}
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		sb.WriteRune(rune(b))
	}
	*dest = sb.String()
}

// ReadObject delegates to the value's own decoding routine.
func (r *Reader) ReadObject(u Unmarshaler) {
	if r.err != nil || u == nil {
		return
	}
	r.setError(u.UnmarshalSurface(r))
}
