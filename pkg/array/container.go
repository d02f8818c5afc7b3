package array

import "reflect"

// Container is the element-type-erased view of any Array or Primitive.
// It is sealed: only this package's container types implement it.
type Container interface {
	Len() int
	Kind() Kind
	String() string

	valueAt(i int) any
	shallowEqual(other Container) bool
	deepEqual(other Container) bool
	concat(other Container) (Container, error)
}

var (
	_ Container = (*Array[any])(nil)
	_ Container = (*Primitive[bool])(nil)
)

// Same reports whether a and b are the same container instance. This is the
// identity relation; two distinct containers with identical contents are
// never Same.
func Same(a, b Container) bool {
	return a == b
}

// Values copies the elements of c into a []any in index order. A nil
// container has no values.
func Values(c Container) []any {
	if isNil(c) {
		return nil
	}
	out := make([]any, c.Len())
	for i := range out {
		out[i] = c.valueAt(i)
	}
	return out
}

// At returns element i of c as an interface value. It fails like Get when
// i is outside [0, c.Len()).
func At(c Container, i int) (any, error) {
	if i < 0 || i >= c.Len() {
		return nil, errIndexOutOfRange(i, c.Len())
	}
	return c.valueAt(i), nil
}

// isNil reports whether c is nil or holds a nil container pointer.
func isNil(c Container) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
