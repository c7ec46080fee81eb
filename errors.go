package pixcodec

import "errors"

var (
	// ErrNilSurface indicates that NewWriter/NewReader was called with a nil Surface.
	ErrNilSurface = errors.New("pixcodec: NewWriter/NewReader called with a nil Surface")

	// ErrEmptySurface indicates a surface with a zero or negative dimension.
	ErrEmptySurface = errors.New("pixcodec: surface must be at least 1x1 pixels")

	// ErrOutOfBounds indicates a byte offset that resolves past the surface's
	// W*H*3 capacity. Writes detect this before touching any pixel.
	ErrOutOfBounds = errors.New("pixcodec: byte offset past surface capacity")

	// ErrEncodingRange indicates a string containing a code point above 255,
	// which the one-byte-per-character wire form cannot carry.
	ErrEncodingRange = errors.New("pixcodec: string code point outside 0-255")

	// ErrTypeMismatch indicates a value or declared type the dispatch layer
	// does not recognize and that does not implement the object protocol.
	ErrTypeMismatch = errors.New("pixcodec: type has no encoding")

	// ErrCorruptLength indicates a negative string/list length prefix, which
	// can only come from a read sequence that does not mirror its write sequence.
	ErrCorruptLength = errors.New("pixcodec: negative length prefix")

	// ErrNotFixedSize indicates a Fixed payload containing variable-size fields
	// (slices, maps, strings) that encoding/binary cannot size.
	ErrNotFixedSize = errors.New("pixcodec: payload contains variable-size fields")

	// ErrInvalidSeek indicates a seek target outside the surface's byte range.
	ErrInvalidSeek = errors.New("pixcodec: seek to an invalid position")

	// ErrInvalidWhence indicates an invalid 'whence' parameter in a Seek operation.
	ErrInvalidWhence = errors.New("pixcodec: unsupported whence for surface seek")
)
