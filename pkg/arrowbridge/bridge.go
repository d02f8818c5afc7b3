// Package arrowbridge converts primitive containers to and from Apache Arrow
// arrays without boxing. Char containers travel as int32 arrays.
package arrowbridge

import (
	"github.com/apache/arrow-go/v18/arrow"
	arrowarray "github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/ajitpratap0/arrays/pkg/array"
	"github.com/ajitpratap0/arrays/pkg/errors"
)

// valuesBuilder is the slice-appending subset shared by Arrow's fixed-width
// builders.
type valuesBuilder[T any] interface {
	AppendValues(v []T, valid []bool)
	NewArray() arrow.Array
	Release()
}

func build[T any](b valuesBuilder[T], values []T) arrow.Array {
	defer b.Release()
	b.AppendValues(values, nil)
	return b.NewArray()
}

// ToArrow copies p into a new Arrow array allocated from mem. The caller
// owns the result and must Release it. A nil mem uses the Go allocator.
func ToArrow[P array.Scalar](mem memory.Allocator, p *array.Primitive[P]) (arrow.Array, error) {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}

	switch c := any(p).(type) {
	case *array.BoolArray:
		return build[bool](arrowarray.NewBooleanBuilder(mem), c.Values()), nil
	case *array.Int8Array:
		return build[int8](arrowarray.NewInt8Builder(mem), c.Values()), nil
	case *array.Int16Array:
		return build[int16](arrowarray.NewInt16Builder(mem), c.Values()), nil
	case *array.Int32Array:
		return build[int32](arrowarray.NewInt32Builder(mem), c.Values()), nil
	case *array.Int64Array:
		return build[int64](arrowarray.NewInt64Builder(mem), c.Values()), nil
	case *array.Float32Array:
		return build[float32](arrowarray.NewFloat32Builder(mem), c.Values()), nil
	case *array.Float64Array:
		return build[float64](arrowarray.NewFloat64Builder(mem), c.Values()), nil
	case *array.ByteArray:
		return build[uint8](arrowarray.NewUint8Builder(mem), c.Values()), nil
	case *array.CharArray:
		runes := make([]int32, c.Len())
		for i, ch := range c.Indexed() {
			runes[i] = int32(ch)
		}
		return build[int32](arrowarray.NewInt32Builder(mem), runes), nil
	}

	return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "no arrow type for %T", p).
		WithDetail("kind", p.Kind().String())
}

// ToArrowContainer is ToArrow for erased containers. Generic arrays have
// no Arrow counterpart and fail with a type mismatch.
func ToArrowContainer(mem memory.Allocator, c array.Container) (arrow.Array, error) {
	switch p := c.(type) {
	case *array.BoolArray:
		return ToArrow(mem, p)
	case *array.Int8Array:
		return ToArrow(mem, p)
	case *array.Int16Array:
		return ToArrow(mem, p)
	case *array.Int32Array:
		return ToArrow(mem, p)
	case *array.Int64Array:
		return ToArrow(mem, p)
	case *array.Float32Array:
		return ToArrow(mem, p)
	case *array.Float64Array:
		return ToArrow(mem, p)
	case *array.ByteArray:
		return ToArrow(mem, p)
	case *array.CharArray:
		return ToArrow(mem, p)
	}
	return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "no arrow type for %T", c)
}

// FromArrow copies an Arrow array into a new primitive container. The Arrow
// array must match P's kind and contain no nulls; the input is not retained.
func FromArrow[P array.Scalar](arr arrow.Array) (*array.Primitive[P], error) {
	if arr.NullN() > 0 {
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				return nil, errors.Newf(errors.ErrorTypeConversion, "arrow slot %d is null", i).
					WithDetail("index", i)
			}
		}
	}

	var (
		out any
		ok  bool
	)
	switch any(*new(P)).(type) {
	case bool:
		var b *arrowarray.Boolean
		if b, ok = arr.(*arrowarray.Boolean); ok {
			values := make([]bool, b.Len())
			for i := range values {
				values[i] = b.Value(i)
			}
			out = array.PrimitiveFromSlice(values)
		}
	case int8:
		var a *arrowarray.Int8
		if a, ok = arr.(*arrowarray.Int8); ok {
			out = array.PrimitiveFromSlice(a.Int8Values())
		}
	case int16:
		var a *arrowarray.Int16
		if a, ok = arr.(*arrowarray.Int16); ok {
			out = array.PrimitiveFromSlice(a.Int16Values())
		}
	case int32:
		var a *arrowarray.Int32
		if a, ok = arr.(*arrowarray.Int32); ok {
			out = array.PrimitiveFromSlice(a.Int32Values())
		}
	case int64:
		var a *arrowarray.Int64
		if a, ok = arr.(*arrowarray.Int64); ok {
			out = array.PrimitiveFromSlice(a.Int64Values())
		}
	case float32:
		var a *arrowarray.Float32
		if a, ok = arr.(*arrowarray.Float32); ok {
			out = array.PrimitiveFromSlice(a.Float32Values())
		}
	case float64:
		var a *arrowarray.Float64
		if a, ok = arr.(*arrowarray.Float64); ok {
			out = array.PrimitiveFromSlice(a.Float64Values())
		}
	case uint8:
		var a *arrowarray.Uint8
		if a, ok = arr.(*arrowarray.Uint8); ok {
			out = array.PrimitiveFromSlice(a.Uint8Values())
		}
	case array.Char:
		var a *arrowarray.Int32
		if a, ok = arr.(*arrowarray.Int32); ok {
			chars := make([]array.Char, a.Len())
			for i, r := range a.Int32Values() {
				chars[i] = array.Char(r)
			}
			out = array.PrimitiveFromSlice(chars)
		}
	}

	p, matched := out.(*array.Primitive[P])
	if !ok || !matched {
		var zero P
		return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "cannot read arrow %s as %T", arr.DataType(), zero)
	}
	return p, nil
}
