package array

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

func TestPrimitiveKinds(t *testing.T) {
	tests := []struct {
		name string
		c    Container
		kind Kind
	}{
		{"bool", EmptyPrimitive[bool](), KindBool},
		{"int8", EmptyPrimitive[int8](), KindInt8},
		{"int16", EmptyPrimitive[int16](), KindInt16},
		{"int32", EmptyPrimitive[int32](), KindInt32},
		{"int64", EmptyPrimitive[int64](), KindInt64},
		{"float32", EmptyPrimitive[float32](), KindFloat32},
		{"float64", EmptyPrimitive[float64](), KindFloat64},
		{"char", EmptyPrimitive[Char](), KindChar},
		{"uint8", EmptyPrimitive[uint8](), KindUint8},
		{"object", Empty[int](), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.c.Kind())
			assert.Equal(t, tt.name, tt.c.Kind().String())

			parsed, ok := ParseKind(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, parsed)
		})
	}
}

func TestNamedScalarUsesUnderlyingKind(t *testing.T) {
	p := PrimitiveOf[celsius](21.5, 22)
	assert.Equal(t, KindFloat64, p.Kind())
}

func TestPrimitiveConstruction(t *testing.T) {
	p, err := NewPrimitive(4, func(i int) int64 { return int64(i) * 10 })
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 10, 20, 30}, p.Values())

	f, err := FilledPrimitive[float32](3, 1.5)
	require.NoError(t, err)
	assert.Equal(t, []float32{1.5, 1.5, 1.5}, f.Values())

	_, err = NewPrimitive[int32](-1, nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidSize))

	_, err = FilledPrimitive(-1, true)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidSize))

	seq := PrimitiveFromSeq(slices.Values([]int16{3, 1, 2}))
	assert.Equal(t, []int16{3, 1, 2}, seq.Values())
}

func TestPrimitiveGetSet(t *testing.T) {
	p := PrimitiveOf[int32](1, 2, 3)

	require.NoError(t, p.Set(1, 20))
	v, err := p.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int32(20), v)

	for _, i := range []int{-1, p.Len()} {
		_, err := p.Get(i)
		assert.True(t, errors.IsType(err, errors.ErrorTypeIndexOutOfRange))
		assert.True(t, errors.IsType(p.Set(i, 0), errors.ErrorTypeIndexOutOfRange))
	}
	assert.Equal(t, []int32{1, 20, 3}, p.Values())
}

func TestPrimitiveValuesIsACopy(t *testing.T) {
	p := PrimitiveOf[uint8](1, 2)
	values := p.Values()
	values[0] = 9

	v, _ := p.Get(0)
	assert.Equal(t, uint8(1), v)
}

func TestPrimitiveMemoryUsage(t *testing.T) {
	assert.Equal(t, int64(8*4), PrimitiveOf[int64](1, 2, 3, 4).MemoryUsage())
	assert.Equal(t, int64(2*3), PrimitiveOf[int16](1, 2, 3).MemoryUsage())
	assert.Equal(t, int64(4*2), PrimitiveOf[Char]('a', 'b').MemoryUsage())
	assert.Equal(t, int64(0), EmptyPrimitive[float64]().MemoryUsage())
}

func TestPrimitiveString(t *testing.T) {
	assert.Equal(t, "[a, b]", PrimitiveOf[Char]('a', 'b').String())
	assert.Equal(t, "[true, false]", PrimitiveOf(true, false).String())
	assert.Equal(t, "[1.5, 2]", PrimitiveOf(1.5, 2.0).String())
}

func TestBoxedRoundTrip(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		p := PrimitiveOf[int32](1, -2, 3)
		back, err := FromBoxed(p.ToBoxed())
		require.NoError(t, err)
		assert.True(t, PrimitiveEqual(p, back))
	})
	t.Run("float64 with NaN", func(t *testing.T) {
		p := PrimitiveOf(1.0, math.NaN(), math.Inf(-1))
		back, err := FromBoxed(p.ToBoxed())
		require.NoError(t, err)
		assert.True(t, PrimitiveEqual(p, back))
	})
	t.Run("char", func(t *testing.T) {
		p := PrimitiveOf[Char]('x', 'y')
		back, err := FromBoxed(p.ToBoxed())
		require.NoError(t, err)
		assert.True(t, PrimitiveEqual(p, back))
	})
	t.Run("empty", func(t *testing.T) {
		p := EmptyPrimitive[bool]()
		back, err := FromBoxed(p.ToBoxed())
		require.NoError(t, err)
		assert.True(t, PrimitiveEqual(p, back))
	})
	t.Run("nil array", func(t *testing.T) {
		back, err := FromBoxed[int16](nil)
		require.Error(t, err)
		assert.Nil(t, back)
		assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))
	})
}

func TestToBoxedAllocatesPerSlot(t *testing.T) {
	p := PrimitiveOf[int64](5, 5)
	boxed := p.ToBoxed()

	first, _ := boxed.Get(0)
	second, _ := boxed.Get(1)
	require.NotNil(t, first)
	assert.NotSame(t, first, second)

	*first = 100
	v, _ := p.Get(0)
	assert.Equal(t, int64(5), v, "boxes must not alias the primitive buffer")
}

func TestFromBoxedRejectsNil(t *testing.T) {
	one := int32(1)
	boxed := Of[*int32](&one, nil, &one)

	p, err := FromBoxed(boxed)
	require.Error(t, err)
	assert.Nil(t, p)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConversion))

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	index, _ := e.Detail("index")
	assert.Equal(t, 1, index)
}

func TestPrimitiveReadOnly(t *testing.T) {
	p := PrimitiveOf[int8](1, 2)
	r := p.ReadOnly()

	_, isWriter := r.(Writer[int8])
	assert.False(t, isWriter)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []int8{1, 2}, slices.Collect(r.All()))
}

func TestPrimitiveIndexedAndClone(t *testing.T) {
	p := PrimitiveOf[int16](4, 5, 6)
	c := p.Clone()
	p.Fill(0)

	var got []int16
	for i, v := range c.Indexed() {
		got = append(got, int16(i)+v)
	}
	assert.Equal(t, []int16{4, 6, 8}, got)
	assert.Equal(t, []int16{0, 0, 0}, p.Values())
}
