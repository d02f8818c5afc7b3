package array

import (
	"iter"
	"reflect"
)

// Reader is the read-only capability of a container. Unlike Array it is
// safe to widen: see Widen.
type Reader[T any] interface {
	Len() int
	Get(i int) (T, error)
	All() iter.Seq[T]
}

// Writer is the write capability. It is deliberately kept invariant.
type Writer[T any] interface {
	Reader[T]
	Set(i int, v T) error
}

var (
	_ Writer[int]   = (*Array[int])(nil)
	_ Writer[int32] = (*Primitive[int32])(nil)
)

// readOnly hides the concrete container so callers cannot assert their way
// back to Set.
type readOnly[T any] struct {
	src Reader[T]
}

func (r readOnly[T]) Len() int             { return r.src.Len() }
func (r readOnly[T]) Get(i int) (T, error) { return r.src.Get(i) }
func (r readOnly[T]) All() iter.Seq[T]     { return r.src.All() }

// ReadOnly returns a view exposing only Len, Get and All.
func (a *Array[T]) ReadOnly() Reader[T] {
	return readOnly[T]{src: a}
}

// ReadOnly returns a view exposing only Len, Get and All.
func (p *Primitive[P]) ReadOnly() Reader[P] {
	return readOnly[P]{src: p}
}

// Widen exposes a Reader[T] as a Reader[S] where S is an interface type
// that T implements. Widening is safe because the view can never write an
// S into a slot typed for T.
func Widen[S, T any](r Reader[T]) (Reader[S], error) {
	from, to := reflect.TypeFor[T](), reflect.TypeFor[S]()
	if from != to && (to.Kind() != reflect.Interface || !from.AssignableTo(to)) {
		return nil, errTypeMismatch("widen", from, to)
	}
	return widened[S, T]{src: r}, nil
}

type widened[S, T any] struct {
	src Reader[T]
}

func (w widened[S, T]) Len() int { return w.src.Len() }

func (w widened[S, T]) Get(i int) (S, error) {
	v, err := w.src.Get(i)
	if err != nil {
		var zero S
		return zero, err
	}
	return upcast[S](v), nil
}

func (w widened[S, T]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for v := range w.src.All() {
			if !yield(upcast[S](v)) {
				return
			}
		}
	}
}

// upcast relies on Widen having checked assignability; a nil interface
// value maps to the zero S.
func upcast[S, T any](v T) S {
	s, _ := any(v).(S)
	return s
}
