package array

import (
	"cmp"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

func TestSliceKeepsOrderAndDuplicates(t *testing.T) {
	a := Of("b", "a", "b")
	s := a.Slice()
	assert.Equal(t, []string{"b", "a", "b"}, s)

	s[0] = "z"
	v, _ := a.Get(0)
	assert.Equal(t, "b", v, "Slice must return a copy")
}

func TestFromSeq(t *testing.T) {
	a := FromSeq(slices.Values([]int{4, 5, 6}))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{4, 5, 6}, a.Slice())

	empty := FromSeq(slices.Values([]int(nil)))
	assert.Equal(t, 0, empty.Len())
}

func TestToSet(t *testing.T) {
	set, err := ToSet(FromSlice([]string{"a", "b", "c", "c"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "c": {}}, set)
}

func TestToSetUsesDeclaredEquality(t *testing.T) {
	set, err := ToSet(Of[caseless]("Go", "go", "GO", "rust"))
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Contains(t, set, caseless("Go"), "first occurrence wins")
	assert.Contains(t, set, caseless("rust"))
}

func TestToSetAgreesWithDistinct(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		run  func(t *testing.T) (setLen, distinctLen int)
	}{
		{
			name: "float64 NaN",
			run: func(t *testing.T) (int, int) {
				a := Of(nan, nan, 1.0)
				set, err := ToSet(a)
				require.NoError(t, err)
				return len(set), Distinct(a).Len()
			},
		},
		{
			name: "float32 NaN",
			run: func(t *testing.T) (int, int) {
				a := Of(float32(nan), float32(nan))
				set, err := ToSet(a)
				require.NoError(t, err)
				return len(set), Distinct(a).Len()
			},
		},
		{
			name: "named float NaN",
			run: func(t *testing.T) (int, int) {
				a := Of(celsius(nan), celsius(nan), celsius(20))
				set, err := ToSet(a)
				require.NoError(t, err)
				return len(set), Distinct(a).Len()
			},
		},
		{
			name: "NaN behind interface",
			run: func(t *testing.T) (int, int) {
				a := Of[any](nan, nan, "x")
				set, err := ToSet(a)
				require.NoError(t, err)
				return len(set), Distinct(a).Len()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setLen, distinctLen := tt.run(t)
			assert.Equal(t, distinctLen, setLen)
		})
	}
}

func TestToSetRejectsUnhashableValues(t *testing.T) {
	tests := []struct {
		name  string
		input *Array[any]
		index int
	}{
		{"slice", Of[any]([]int{1}, []int{1}), 0},
		{"map after hashable", Of[any](1, map[string]int{}), 1},
		{"struct holding slice", Of[any]("a", struct{ V any }{[]int{1}}), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				set map[any]struct{}
				err error
			)
			require.NotPanics(t, func() { set, err = ToSet(tt.input) })
			require.Error(t, err)
			assert.Nil(t, set)
			assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))

			var e *errors.Error
			require.ErrorAs(t, err, &e)
			index, _ := e.Detail("index")
			assert.Equal(t, tt.index, index)
		})
	}

	set, err := ToSet(Of[any](nil, 1, nil, "1"))
	require.NoError(t, err)
	assert.Len(t, set, 3)
}

func TestDistinctKeepsFirstOccurrence(t *testing.T) {
	d := Distinct(Of(3, 1, 3, 2, 1))
	assert.Equal(t, []int{3, 1, 2}, d.Slice())

	// Non-comparable element types work too.
	s := Distinct(Of([]int{1}, []int{2}, []int{1}))
	assert.Equal(t, [][]int{{1}, {2}}, s.Slice())
}

func TestFromSetSorted(t *testing.T) {
	a := FromSet(map[string]struct{}{"c": {}, "a": {}, "b": {}}, strings.Compare)
	assert.Equal(t, []string{"a", "b", "c"}, a.Slice())
}

func TestToMapLastWriteWins(t *testing.T) {
	pairs := FromSlice([]Pair[string, int]{
		NewPair("a", 1),
		NewPair("b", 2),
		NewPair("a", 3),
	})

	assert.Equal(t, map[string]int{"a": 3, "b": 2}, ToMap(pairs))
	assert.Equal(t, 3, pairs.Len(), "input must be unchanged")
}

func TestFromMapRoundTrip(t *testing.T) {
	m := map[string]int{"x": 1, "y": 2, "z": 3}
	pairs := FromMap(m, cmp.Compare[string])

	require.Equal(t, 3, pairs.Len())
	first, _ := pairs.Get(0)
	assert.Equal(t, "x", first.Key())
	assert.Equal(t, 1, first.Value())
	assert.True(t, maps.Equal(m, ToMap(pairs)))
}

func TestToMapAny(t *testing.T) {
	t.Run("pairs", func(t *testing.T) {
		m, err := ToMapAny(Of(NewPair("a", 1), NewPair("a", 2)))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"a": 2}, m)
	})
	t.Run("two element slices", func(t *testing.T) {
		m, err := ToMapAny(Of[any]([]any{"k", 1}, []any{"j", 2}))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"k": 1, "j": 2}, m)
	})
	t.Run("not pairs", func(t *testing.T) {
		m, err := ToMapAny(Of(1, 2))
		require.Error(t, err)
		assert.Nil(t, m)
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotPairElement))
	})
	t.Run("primitive", func(t *testing.T) {
		_, err := ToMapAny(PrimitiveOf[int32](1))
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotPairElement))
	})
	t.Run("non-comparable key", func(t *testing.T) {
		_, err := ToMapAny(Of(NewPair([]int{1}, "v")))
		assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))
	})
	t.Run("key hiding a slice", func(t *testing.T) {
		_, err := ToMapAny(Of(NewPair[any, string](struct{ V any }{[]int{1}}, "v")))
		assert.True(t, errors.IsType(err, errors.ErrorTypeTypeMismatch))
	})
	t.Run("two element containers", func(t *testing.T) {
		m, err := ToMapAny(Of[any](Of[any]("k", 1), PrimitiveOf[int32](7, 8)))
		require.NoError(t, err)
		assert.Equal(t, map[any]any{"k": 1, int32(7): int32(8)}, m)
	})
}

func TestPairEquality(t *testing.T) {
	inner := Of(1)
	a := Of(NewPair("k", inner))
	b := Of(NewPair("k", inner))
	c := Of(NewPair("k", Of(1)))

	assert.True(t, ShallowEqual(a, b))
	assert.False(t, ShallowEqual(a, c))
	assert.True(t, DeepEqual(a, c))
}

func TestValuesErased(t *testing.T) {
	assert.Equal(t, []any{int32(1), int32(2)}, Values(PrimitiveOf[int32](1, 2)))
	assert.Equal(t, []any{"a"}, Values(Of("a")))

	var nilArray *Array[string]
	assert.Nil(t, Values(nil))
	assert.Nil(t, Values(nilArray))
}
