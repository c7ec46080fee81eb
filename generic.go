package pixcodec

import (
	"fmt"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// WriteValue encodes a value whose kind is inferred at runtime: every Go
// integer kind becomes a 64-bit integer (the generic path always uses the
// full width; only WriteInt32 emits the short form), strings become
// length-prefixed strings, slices and arrays become lists, and anything else
// must implement Marshaler. The stream records none of this: the reading side
// has to declare the same shape.
func (w *Writer) WriteValue(v any) {
	if w.err != nil {
		return
	}
	w.writeValue(reflect.ValueOf(v))
}

func (w *Writer) writeValue(rv reflect.Value) {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		w.setError(fmt.Errorf("%w: untyped nil", ErrTypeMismatch))
		return
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		w.WriteInt64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		w.WriteInt64(int64(rv.Uint()))
	case reflect.String:
		w.WriteString(rv.String())
	case reflect.Slice, reflect.Array:
		w.writeList(rv)
	default:
		w.writeObject(rv)
	}
}

func (w *Writer) writeObject(rv reflect.Value) {
	if m, ok := rv.Interface().(Marshaler); ok {
		w.setError(m.MarshalSurface(w))
		return
	}
	// Value types whose Marshaler lives on the pointer receiver need an
	// addressable copy before the method is callable.
	if reflect.PointerTo(rv.Type()).Implements(marshalerType) {
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		w.setError(pv.Interface().(Marshaler).MarshalSurface(w))
		return
	}
	w.setError(fmt.Errorf("%w: %s does not implement Marshaler", ErrTypeMismatch, rv.Type()))
}

// decoderFunc decodes one value of a fixed declared type.
type decoderFunc func(r *Reader) (reflect.Value, error)

// decoderCache memoizes the decoder resolved for each declared type.
// Resolution is pure, so duplicated work on a first-use race is harmless.
var decoderCache = xsync.NewMap[reflect.Type, decoderFunc]()

// Read decodes one value of declared type T. The stream is tag-free: T must
// match what the producing write pass emitted at this position. Supported
// declared types are int and int64 (64-bit wire form), int32 (32-bit form),
// string, slices of supported types, and any T whose pointer implements
// Unmarshaler.
func Read[T any](r *Reader) (T, error) {
	var zero T
	if r.err != nil {
		return zero, r.err
	}
	dec, err := decoderFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		r.setError(err)
		return zero, err
	}
	rv, err := dec(r)
	if err != nil {
		return zero, err
	}
	return rv.Interface().(T), nil
}

// ReadList decodes a length-prefixed list with element type E.
func ReadList[E any](r *Reader) ([]E, error) {
	return Read[[]E](r)
}

func decoderFor(t reflect.Type) (decoderFunc, error) {
	if dec, ok := decoderCache.Load(t); ok {
		return dec, nil
	}
	dec, err := buildDecoder(t)
	if err != nil {
		return nil, err
	}
	decoderCache.Store(t, dec)
	return dec, nil
}

func buildDecoder(t reflect.Type) (decoderFunc, error) {
	switch t.Kind() {
	case reflect.Int, reflect.Int64:
		return func(r *Reader) (reflect.Value, error) {
			var v int64
			r.ReadInt64(&v)
			if r.err != nil {
				return reflect.Value{}, r.err
			}
			return reflect.ValueOf(v).Convert(t), nil
		}, nil
	case reflect.Int32:
		return func(r *Reader) (reflect.Value, error) {
			var v int32
			r.ReadInt32(&v)
			if r.err != nil {
				return reflect.Value{}, r.err
			}
			return reflect.ValueOf(v).Convert(t), nil
		}, nil
	case reflect.String:
		return func(r *Reader) (reflect.Value, error) {
			var s string
			r.ReadString(&s)
			if r.err != nil {
				return reflect.Value{}, r.err
			}
			return reflect.ValueOf(s).Convert(t), nil
		}, nil
	case reflect.Slice:
		elem, err := decoderFor(t.Elem())
		if err != nil {
			return nil, err
		}
		return func(r *Reader) (reflect.Value, error) {
			return readList(r, t, elem)
		}, nil
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return func(r *Reader) (reflect.Value, error) {
			pv := reflect.New(t)
			if err := pv.Interface().(Unmarshaler).UnmarshalSurface(r); err != nil {
				r.setError(err)
				return reflect.Value{}, err
			}
			return pv.Elem(), nil
		}, nil
	}
	if t.Kind() == reflect.Pointer && t.Implements(unmarshalerType) {
		return func(r *Reader) (reflect.Value, error) {
			pv := reflect.New(t.Elem())
			if err := pv.Interface().(Unmarshaler).UnmarshalSurface(r); err != nil {
				r.setError(err)
				return reflect.Value{}, err
			}
			return pv, nil
		}, nil
	}
	return nil, fmt.Errorf("%w: no decoder for %s", ErrTypeMismatch, t)
}
