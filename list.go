package pixcodec

import (
	"fmt"
	"reflect"
)

// WriteList writes an 8-byte element count followed by each element encoded
// under the kind dispatch of WriteValue. items must be a slice or an array;
// elements may themselves be lists, so nested sequences encode recursively.
func (w *Writer) WriteList(items any) {
	if w.err != nil {
		return
	}
	w.writeList(reflect.ValueOf(items))
}

func (w *Writer) writeList(rv reflect.Value) {
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		w.setError(fmt.Errorf("%w: %s is not a list", ErrTypeMismatch, rv.Kind()))
		return
	}
	w.WriteInt64(int64(rv.Len()))
	for i := 0; i < rv.Len() && w.err == nil; i++ {
		w.writeValue(rv.Index(i))
	}
}

// readList decodes a length-prefixed sequence of t's element type. elem is
// the already-resolved decoder for one element.
func readList(r *Reader, t reflect.Type, elem decoderFunc) (reflect.Value, error) {
	n, ok := r.readLength()
	if !ok {
		return reflect.Value{}, r.err
	}
	out := reflect.MakeSlice(t, 0, n)
	for i := 0; i < n; i++ {
		item, err := elem(r)
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, item)
	}
	return out, nil
}
