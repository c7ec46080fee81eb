package pixcodec

// Pixel is one grid cell: three 8-bit color channels in fixed order.
// A backing store may carry additional channels (alpha, typically); the codec
// never reads or writes those.
type Pixel [3]uint8

// Surface is the pixel grid a byte stream is embedded into or extracted from.
// The codec shares the surface with its owner; it never creates, resizes, or
// persists one. Implementations may assume 0 <= x < Width() and
// 0 <= y < Height(): both cursor types validate the offset before every access.
type Surface interface {
	PixelAt(x, y int) Pixel
	SetPixel(x, y int, p Pixel)
	Width() int
	Height() int
}

// Marshaler is implemented by types that encode themselves onto a surface.
// MarshalSurface issues a fixed, self-chosen sequence of writes; the order of
// those writes is the type's own contract, the codec enforces no schema.
type Marshaler interface {
	MarshalSurface(w *Writer) error
}

// Unmarshaler is the read-side counterpart: it must issue the exact mirror of
// the sequence MarshalSurface produced. Implementations must behave when
// called on a Reader whose error is already latched; every read is a no-op
// then, so only the top-level caller needs to check the error once.
type Unmarshaler interface {
	UnmarshalSurface(r *Reader) error
}

// Sizer is implemented by types that can report their encoded size in bytes
// ahead of time.
type Sizer interface {
	Size() int
}

// Codec aggregates both directions. A type implementing Codec round-trips
// through any surface on its own.
type Codec interface {
	Marshaler
	Unmarshaler
}
