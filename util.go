package pixcodec

import "golang.org/x/exp/constraints"

// Ptr is a helper function to create a pointer to a value, making test setup cleaner.
func Ptr[T any](v T) *T { return &v }

// fitsByte reports whether v is representable as one unsigned byte.
func fitsByte[T constraints.Integer](v T) bool { return v >= 0 && uint64(v) <= 255 }
