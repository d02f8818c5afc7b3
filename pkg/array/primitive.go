package array

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/ajitpratap0/arrays/pkg/errors"
	stringpool "github.com/ajitpratap0/arrays/pkg/strings"
)

// Primitive is a fixed-size container of unboxed scalar values. Elements
// live contiguously in one []P with no per-element allocation and no absent
// state. It shares Array's operation surface but not its representation.
type Primitive[P Scalar] struct {
	buf storage[P]
}

// Per-kind instantiations.
type (
	BoolArray    = Primitive[bool]
	Int8Array    = Primitive[int8]
	Int16Array   = Primitive[int16]
	Int32Array   = Primitive[int32]
	Int64Array   = Primitive[int64]
	Float32Array = Primitive[float32]
	Float64Array = Primitive[float64]
	CharArray    = Primitive[Char]
	ByteArray    = Primitive[uint8]
)

// NewPrimitive allocates size slots and fills slot i with gen(i), calling
// gen once per index in ascending order. A nil gen leaves zero values.
func NewPrimitive[P Scalar](size int, gen func(i int) P) (*Primitive[P], error) {
	buf, err := newStorage[P](size)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		for i := range buf.data {
			buf.data[i] = gen(i)
		}
	}
	return &Primitive[P]{buf: buf}, nil
}

// FilledPrimitive allocates size slots all holding fill.
func FilledPrimitive[P Scalar](size int, fill P) (*Primitive[P], error) {
	buf, err := newStorage[P](size)
	if err != nil {
		return nil, err
	}
	buf.fill(fill)
	return &Primitive[P]{buf: buf}, nil
}

// PrimitiveOf builds a container from an enumerated literal.
func PrimitiveOf[P Scalar](values ...P) *Primitive[P] {
	return PrimitiveFromSlice(values)
}

// EmptyPrimitive returns a zero-length container.
func EmptyPrimitive[P Scalar]() *Primitive[P] {
	return &Primitive[P]{buf: adopt[P](nil)}
}

// PrimitiveFromSlice copies values into a new container.
func PrimitiveFromSlice[P Scalar](values []P) *Primitive[P] {
	return &Primitive[P]{buf: adopt(slices.Clone(values))}
}

// PrimitiveFromSeq materializes seq eagerly.
func PrimitiveFromSeq[P Scalar](seq iter.Seq[P]) *Primitive[P] {
	return &Primitive[P]{buf: adopt(slices.Collect(seq))}
}

// Len returns the fixed number of slots.
func (p *Primitive[P]) Len() int {
	return p.buf.len()
}

// Kind reports the scalar kind stored.
func (p *Primitive[P]) Kind() Kind {
	return kindOf[P]()
}

// Get returns the element at index i.
func (p *Primitive[P]) Get(i int) (P, error) {
	return p.buf.load(i)
}

// Set replaces the element at index i. On failure the container is unchanged.
func (p *Primitive[P]) Set(i int, v P) error {
	return p.buf.store(i, v)
}

// Fill overwrites every slot with v.
func (p *Primitive[P]) Fill(v P) {
	p.buf.fill(v)
}

// All returns a re-iterable sequence over the elements in index order.
func (p *Primitive[P]) All() iter.Seq[P] {
	return slices.Values(p.buf.data)
}

// Indexed returns a re-iterable sequence of index/element pairs.
func (p *Primitive[P]) Indexed() iter.Seq2[int, P] {
	return slices.All(p.buf.data)
}

// Shuffle permutes the elements in place using r, or the global source
// when r is nil.
func (p *Primitive[P]) Shuffle(r *rand.Rand) {
	swap := func(i, j int) { p.buf.data[i], p.buf.data[j] = p.buf.data[j], p.buf.data[i] }
	if r == nil {
		rand.Shuffle(p.Len(), swap)
		return
	}
	r.Shuffle(p.Len(), swap)
}

// Clone returns a new container holding the same values.
func (p *Primitive[P]) Clone() *Primitive[P] {
	return &Primitive[P]{buf: adopt(p.buf.copyOut())}
}

// MemoryUsage returns the payload size in bytes
func (p *Primitive[P]) MemoryUsage() int64 {
	return int64(p.Len()) * widthOf[P]()
}

// Values returns a copy of the raw values.
func (p *Primitive[P]) Values() []P {
	return p.buf.copyOut()
}

// ToBoxed transcodes into a generic Array with one heap-allocated box per
// element.
func (p *Primitive[P]) ToBoxed() *Array[*P] {
	boxed := make([]*P, p.Len())
	for i, v := range p.buf.data {
		v := v
		boxed[i] = &v
	}
	return &Array[*P]{buf: adopt(boxed)}
}

// FromBoxed unboxes a generic Array. It fails with a conversion error
// naming the first nil slot, leaving no partial result. A nil array is a
// type mismatch.
func FromBoxed[P Scalar](a *Array[*P]) (*Primitive[P], error) {
	if a == nil {
		return nil, errTypeMismatch("unbox", a, reflect.TypeFor[*Primitive[P]]())
	}
	values := make([]P, a.Len())
	for i, box := range a.buf.data {
		if box == nil {
			return nil, errors.Newf(errors.ErrorTypeConversion, "boxed slot %d is nil", i).
				WithDetail("index", i).
				WithDetail("kind", kindOf[P]().String())
		}
		values[i] = *box
	}
	return &Primitive[P]{buf: adopt(values)}, nil
}

// String renders the container as "[v0, v1, ...]".
func (p *Primitive[P]) String() string {
	if p == nil {
		return "<nil>"
	}
	return stringpool.FormatList(p.Len(), func(i int, b *stringpool.Builder) {
		fmt.Fprint(b, p.buf.data[i])
	})
}

func (p *Primitive[P]) valueAt(i int) any {
	return p.buf.data[i]
}
