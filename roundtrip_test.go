package pixcodec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// player is the canonical object-protocol participant used across the
// round-trip tests: two 32-bit coordinates, a 32-bit health and a name.
type player struct {
	X, Y   int32
	Health int32
	Name   string
}

func (p *player) MarshalSurface(w *Writer) error {
	w.WriteInt32(p.X)
	w.WriteInt32(p.Y)
	w.WriteInt32(p.Health)
	w.WriteString(p.Name)
	return w.Err()
}

func (p *player) UnmarshalSurface(r *Reader) error {
	r.ReadInt32(&p.X)
	r.ReadInt32(&p.Y)
	r.ReadInt32(&p.Health)
	r.ReadString(&p.Name)
	return r.Err()
}

var _ Codec = (*player)(nil)

// squad is an object whose encoding contains a nested list.
type squad struct {
	Name    string
	Scores  []int64
	Members []string
}

func (s *squad) MarshalSurface(w *Writer) error {
	w.WriteString(s.Name)
	w.WriteList(s.Scores)
	w.WriteList(s.Members)
	return w.Err()
}

func (s *squad) UnmarshalSurface(r *Reader) (err error) {
	r.ReadString(&s.Name)
	if s.Scores, err = ReadList[int64](r); err != nil {
		return err
	}
	if s.Members, err = ReadList[string](r); err != nil {
		return err
	}
	return r.Err()
}

func TestRoundTripIntegerBoundaries(t *testing.T) {
	t.Run("Int64", func(t *testing.T) {
		for _, v := range []int64{0, 1, -1, 42, math.MaxInt64, math.MinInt64} {
			s := NewMemorySurface(2, 2)
			w, _ := NewWriter(s)
			w.WriteInt64(v)
			require.NoError(t, w.Err())

			r, _ := NewReader(s)
			var got int64
			r.ReadInt64(&got)
			require.NoError(t, r.Err())
			assert.Equal(t, v, got)
		}
	})

	t.Run("Int32", func(t *testing.T) {
		for _, v := range []int32{0, -1, math.MaxInt32, math.MinInt32} {
			s := NewMemorySurface(2, 2)
			w, _ := NewWriter(s)
			w.WriteInt32(v)
			require.NoError(t, w.Err())

			r, _ := NewReader(s)
			var got int32
			r.ReadInt32(&got)
			require.NoError(t, r.Err())
			assert.Equal(t, v, got)
		}
	})
}

func TestRoundTripString(t *testing.T) {
	cases := map[string]string{
		"Empty":         "",
		"ASCII":         "Jonny Razer",
		"HighCodePoint": "ÿ",     // 255, the last representable code point
		"Latin1":        "café", // multi-byte UTF-8 in Go, one byte on the wire
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewMemorySurface(8, 8)
			w, _ := NewWriter(s)
			w.WriteString(in)
			require.NoError(t, w.Err())

			r, _ := NewReader(s)
			var got string
			r.ReadString(&got)
			require.NoError(t, r.Err())
			assert.Equal(t, in, got)
			assert.Equal(t, w.Count(), r.Count())
		})
	}
}

func TestStringFillsRemainingCapacity(t *testing.T) {
	// 2x2 surface: 12 bytes. An 8-byte prefix plus 4 characters is an exact fit.
	s := NewMemorySurface(2, 2)
	w, _ := NewWriter(s)
	w.WriteString("full")
	require.NoError(t, w.Err())
	assert.Zero(t, w.Remaining())

	r, _ := NewReader(s)
	var got string
	r.ReadString(&got)
	require.NoError(t, r.Err())
	assert.Equal(t, "full", got)
}

func TestListOrdering(t *testing.T) {
	s := NewMemorySurface(4, 4)
	w, _ := NewWriter(s)
	w.WriteList([]int64{10, 20, 30})
	require.NoError(t, w.Err())

	r, _ := NewReader(s)
	got, err := ReadList[int64](r)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20, 30}, got)
}

func TestRoundTripNested(t *testing.T) {
	t.Run("ListOfObjects", func(t *testing.T) {
		in := []player{
			{X: 600, Y: 784, Health: 48, Name: "Mega man"},
			{Health: 100, Name: "Jonny Razer"},
		}
		s := NewMemorySurface(8, 8)
		w, _ := NewWriter(s)
		w.WriteList(in)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		got, err := ReadList[player](r)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("ObjectContainingList", func(t *testing.T) {
		in := squad{Name: "alpha", Scores: []int64{3, -1, 9}, Members: []string{"ana", "bo"}}
		s := NewMemorySurface(8, 8)
		w, _ := NewWriter(s)
		w.WriteObject(&in)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		var got squad
		r.ReadObject(&got)
		require.NoError(t, r.Err())
		assert.Equal(t, in, got)
	})

	t.Run("ListOfLists", func(t *testing.T) {
		in := [][]int64{{1, 2}, {}, {3}}
		s := NewMemorySurface(8, 8)
		w, _ := NewWriter(s)
		w.WriteList(in)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		got, err := Read[[][]int64](r)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})
}

func TestGenericDispatch(t *testing.T) {
	t.Run("IntegersDefaultTo64Bit", func(t *testing.T) {
		s := NewMemorySurface(4, 4)
		w, _ := NewWriter(s)
		w.WriteValue(42)        // int
		w.WriteValue(uint16(7)) // any integer kind widens to i64
		require.NoError(t, w.Err())
		assert.EqualValues(t, 16, w.Count())

		r, _ := NewReader(s)
		a, err := Read[int64](r)
		require.NoError(t, err)
		b, err := Read[int](r)
		require.NoError(t, err)
		assert.Equal(t, int64(42), a)
		assert.Equal(t, 7, b)
	})

	t.Run("StringAndObject", func(t *testing.T) {
		s := NewMemorySurface(8, 8)
		w, _ := NewWriter(s)
		w.WriteValue("hi")
		w.WriteValue(player{X: 1, Y: 2, Health: 3, Name: "p"})
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		str, err := Read[string](r)
		require.NoError(t, err)
		got, err := Read[player](r)
		require.NoError(t, err)
		assert.Equal(t, "hi", str)
		assert.Equal(t, player{X: 1, Y: 2, Health: 3, Name: "p"}, got)
	})

	t.Run("MixedListViaAny", func(t *testing.T) {
		s := NewMemorySurface(8, 8)
		w, _ := NewWriter(s)
		w.WriteList([]any{int64(1), int64(2)})
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		got, err := ReadList[int64](r)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, got)
	})

	t.Run("UnsupportedWriteKind", func(t *testing.T) {
		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteValue(true)
		assert.ErrorIs(t, w.Err(), ErrTypeMismatch)
		assert.Zero(t, w.Count())
	})

	t.Run("UnsupportedDeclaredType", func(t *testing.T) {
		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteInt64(1)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		_, err := Read[float64](r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.ErrorIs(t, r.Err(), ErrTypeMismatch)
	})
}

func TestFixedCodec(t *testing.T) {
	type telemetry struct {
		ID    uint32
		Temp  int16
		Flags [2]byte
	}

	t.Run("RoundTrip", func(t *testing.T) {
		in := Fixed[telemetry]{telemetry{ID: 0xDEADBEEF, Temp: -40, Flags: [2]byte{1, 2}}}
		require.Equal(t, 8, in.Size())

		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteObject(&in)
		require.NoError(t, w.Err())
		assert.EqualValues(t, 8, w.Count())

		r, _ := NewReader(s)
		var got Fixed[telemetry]
		r.ReadObject(&got)
		require.NoError(t, r.Err())
		assert.Equal(t, in.Payload, got.Payload)
	})

	t.Run("InsideList", func(t *testing.T) {
		in := []Fixed[telemetry]{
			{telemetry{ID: 1}},
			{telemetry{ID: 2, Temp: 7}},
		}
		s := NewMemorySurface(4, 4)
		w, _ := NewWriter(s)
		w.WriteList(in)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		got, err := ReadList[Fixed[telemetry]](r)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("VariableSizePayload", func(t *testing.T) {
		type bad struct{ Name string }
		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteObject(&Fixed[bad]{})
		assert.ErrorIs(t, w.Err(), ErrNotFixedSize)
	})
}

func TestCorruptLengthPrefix(t *testing.T) {
	t.Run("Negative", func(t *testing.T) {
		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteInt64(-1)
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		var got string
		r.ReadString(&got)
		assert.ErrorIs(t, r.Err(), ErrCorruptLength)
	})

	t.Run("PastCapacity", func(t *testing.T) {
		s := NewMemorySurface(2, 2)
		w, _ := NewWriter(s)
		w.WriteInt64(1000) // claims far more characters than the surface holds
		require.NoError(t, w.Err())

		r, _ := NewReader(s)
		_, err := ReadList[int64](r)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

// TestEndToEndScenario is the 8x8 reference stream: a 64-bit integer, a short
// string and a list of three 64-bit integers, 8+10+32=50 of 192 bytes.
func TestEndToEndScenario(t *testing.T) {
	s := NewMemorySurface(8, 8)

	w, err := NewWriter(s)
	require.NoError(t, err)
	require.Equal(t, 192, w.Capacity())
	w.WriteInt64(42)
	w.WriteString("hi")
	w.WriteList([]int64{1, 2, 3})

	n, err := w.Result()
	require.NoError(t, err)
	assert.EqualValues(t, 50, n)

	r, err := NewReader(s)
	require.NoError(t, err)

	var answer int64
	var greeting string
	r.ReadInt64(&answer)
	r.ReadString(&greeting)
	items, err := ReadList[int64](r)
	require.NoError(t, err)
	require.NoError(t, r.Err())

	assert.Equal(t, int64(42), answer)
	assert.Equal(t, "hi", greeting)
	assert.Equal(t, []int64{1, 2, 3}, items)
	assert.EqualValues(t, 50, r.Count())
}
