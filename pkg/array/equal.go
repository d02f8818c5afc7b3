package array

import "reflect"

// Equaler is implemented by element types that declare their own equality.
type Equaler[T any] interface {
	Equal(other T) bool
}

// deepComparer lets wrapper element types, such as Option, take part in
// deep comparison of the containers they wrap.
type deepComparer interface {
	deepEqualTo(other any) bool
}

// ShallowEqual reports whether a and b have the same length and pairwise
// equal elements under the element equality rule:
//   - an Equaler's Equal method when T declares one;
//   - identity for container elements, so nested containers only compare
//     equal when both outer slots hold the very same inner instance;
//   - value equality for floats, with NaN equal to NaN;
//   - structural equality for everything else.
//
// Use DeepEqual to compare nested containers by content.
func ShallowEqual[T any](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.buf.data {
		if !elementEqual(x, b.buf.data[i]) {
			return false
		}
	}
	return true
}

// DeepEqual is ShallowEqual that descends into container elements. Inner
// containers must share the same concrete type to compare equal.
//
// There is no cycle detection: a container that reaches itself through its
// elements recurses without bound.
func DeepEqual[T any](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.buf.data {
		if !deepElement(x, b.buf.data[i]) {
			return false
		}
	}
	return true
}

// PrimitiveEqual compares two scalar containers value by value. Scalars
// cannot nest, so shallow and deep equality coincide.
func PrimitiveEqual[P Scalar](a, b *Primitive[P]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.buf.data {
		if !scalarEqual(x, b.buf.data[i]) {
			return false
		}
	}
	return true
}

// ShallowEqualContainers is ShallowEqual over erased containers of any
// kind. Containers of different concrete types are never equal.
func ShallowEqualContainers(a, b Container) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.shallowEqual(b)
}

// DeepEqualContainers is DeepEqual over erased containers of any kind.
func DeepEqualContainers(a, b Container) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.deepEqual(b)
}

func (a *Array[T]) shallowEqual(other Container) bool {
	o, ok := other.(*Array[T])
	return ok && ShallowEqual(a, o)
}

func (p *Primitive[P]) shallowEqual(other Container) bool {
	o, ok := other.(*Primitive[P])
	return ok && PrimitiveEqual(p, o)
}

func (a *Array[T]) deepEqual(other Container) bool {
	o, ok := other.(*Array[T])
	return ok && DeepEqual(a, o)
}

func (p *Primitive[P]) deepEqual(other Container) bool {
	o, ok := other.(*Primitive[P])
	return ok && PrimitiveEqual(p, o)
}

func elementEqual[T any](x, y T) bool {
	if eq, ok := any(x).(Equaler[T]); ok {
		return eq.Equal(y)
	}
	return valueEqual(any(x), any(y))
}

func deepElement[T any](x, y T) bool {
	switch xv := any(x).(type) {
	case Container:
		yv, ok := any(y).(Container)
		return ok && xv.deepEqual(yv)
	case deepComparer:
		return xv.deepEqualTo(any(y))
	}
	return elementEqual(x, y)
}

func valueEqual(x, y any) bool {
	cx, xIsContainer := x.(Container)
	cy, yIsContainer := y.(Container)
	if xIsContainer || yIsContainer {
		return xIsContainer && yIsContainer && Same(cx, cy)
	}

	// Named float types follow the same NaN rule as float32 and float64.
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if xv.IsValid() && yv.IsValid() && xv.Type() == yv.Type() {
		switch xv.Kind() {
		case reflect.Float32, reflect.Float64:
			return scalarEqual(xv.Float(), yv.Float())
		}
	}
	return reflect.DeepEqual(x, y)
}

// scalarEqual treats NaN as equal to itself. For non-float kinds x != x is
// never true.
func scalarEqual[P Scalar](x, y P) bool {
	return x == y || (x != x && y != y)
}
