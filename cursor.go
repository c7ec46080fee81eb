package pixcodec

import "fmt"

// cursor maps a monotonically increasing byte offset onto a pixel surface,
// packing 3 bytes per pixel in channel order, row-major from (0, 0).
//
// The dimensions are captured at construction; the surface must not resize
// while a cursor is bound to it.
type cursor struct {
	surface Surface
	next    int
	w, h    int
}

func newCursor(s Surface) (cursor, error) {
	if s == nil {
		return cursor{}, ErrNilSurface
	}
	w, h := s.Width(), s.Height()
	if w < 1 || h < 1 {
		return cursor{}, fmt.Errorf("%w: got %dx%d", ErrEmptySurface, w, h)
	}
	return cursor{surface: s, w: w, h: h}, nil
}

// Capacity returns the total number of addressable bytes: W*H*3.
func (c *cursor) Capacity() int { return c.w * c.h * 3 }

// Count returns the number of bytes consumed so far.
func (c *cursor) Count() int64 { return int64(c.next) }

// Remaining returns the number of addressable bytes left.
func (c *cursor) Remaining() int { return c.Capacity() - c.next }

// locate resolves the current offset to a pixel coordinate and channel.
// It fails before the caller touches the surface, so a rejected access never
// mutates a pixel.
func (c *cursor) locate() (x, y, channel int, err error) {
	pixel := c.next / 3
	if pixel >= c.w*c.h {
		return 0, 0, 0, fmt.Errorf("%w: byte %d on a %dx%d surface (%d bytes)",
			ErrOutOfBounds, c.next, c.w, c.h, c.Capacity())
	}
	return pixel % c.w, pixel / c.w, c.next % 3, nil
}
