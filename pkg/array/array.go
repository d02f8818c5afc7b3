package array

import (
	"fmt"
	"iter"
	"math/rand/v2"

	stringpool "github.com/ajitpratap0/arrays/pkg/strings"
)

// Array is a fixed-size, homogeneous container of T. Its size is set at
// construction and never changes; every valid index is in [0, Len()).
//
// Array is invariant in T: an *Array[T] is never usable as an *Array[S]
// even when T implements S. Use ReadOnly and Widen for a covariant view.
//
// An Array is not safe for concurrent mutation. Concurrent reads are fine.
type Array[T any] struct {
	buf storage[T]
}

// New allocates an Array of size slots and fills slot i with gen(i),
// calling gen once per index in ascending order. A nil gen leaves every
// slot at the zero value of T.
func New[T any](size int, gen func(i int) T) (*Array[T], error) {
	buf, err := newStorage[T](size)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		for i := range buf.data {
			buf.data[i] = gen(i)
		}
	}
	return &Array[T]{buf: buf}, nil
}

// Filled allocates an Array whose slots all hold fill. When T is a pointer,
// map or slice type every slot aliases the same referent, so a mutation made
// through one slot is visible through all of them.
func Filled[T any](size int, fill T) (*Array[T], error) {
	buf, err := newStorage[T](size)
	if err != nil {
		return nil, err
	}
	buf.fill(fill)
	return &Array[T]{buf: buf}, nil
}

// NullFilled allocates an Array whose slots all hold the absent marker.
func NullFilled[T any](size int) (*Array[Option[T]], error) {
	return New[Option[T]](size, nil)
}

// Of builds an Array from an enumerated literal. The values are copied.
func Of[T any](values ...T) *Array[T] {
	return FromSlice(values)
}

// Empty returns a zero-length Array of T.
func Empty[T any]() *Array[T] {
	return &Array[T]{buf: adopt[T](nil)}
}

// Len returns the fixed number of slots.
func (a *Array[T]) Len() int {
	return a.buf.len()
}

// Kind always reports KindObject for generic arrays.
func (a *Array[T]) Kind() Kind {
	return KindObject
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	return a.buf.load(i)
}

// Set replaces the element at index i. On failure the array is unchanged.
func (a *Array[T]) Set(i int, v T) error {
	return a.buf.store(i, v)
}

// Fill overwrites every slot with v.
func (a *Array[T]) Fill(v T) {
	a.buf.fill(v)
}

// All returns a re-iterable sequence over the elements in index order.
func (a *Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.buf.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Indexed returns a re-iterable sequence of index/element pairs.
func (a *Array[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.buf.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Shuffle permutes the elements in place using r, or the global source
// when r is nil.
func (a *Array[T]) Shuffle(r *rand.Rand) {
	swap := func(i, j int) { a.buf.data[i], a.buf.data[j] = a.buf.data[j], a.buf.data[i] }
	if r == nil {
		rand.Shuffle(a.Len(), swap)
		return
	}
	r.Shuffle(a.Len(), swap)
}

// Clone returns a new Array holding the same element values.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{buf: adopt(a.buf.copyOut())}
}

// String renders the array as "[e0, e1, ...]".
func (a *Array[T]) String() string {
	if a == nil {
		return "<nil>"
	}
	return stringpool.FormatList(a.Len(), func(i int, b *stringpool.Builder) {
		fmt.Fprint(b, a.buf.data[i])
	})
}

func (a *Array[T]) valueAt(i int) any {
	return a.buf.data[i]
}
