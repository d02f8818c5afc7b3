package array

import "github.com/ajitpratap0/arrays/pkg/errors"

// Concat returns a new Array holding a's elements followed by b's. Neither
// input is modified. Both must be non-nil; Join reports nil operands as an
// error instead.
func Concat[T any](a, b *Array[T]) *Array[T] {
	return &Array[T]{buf: joined(&a.buf, &b.buf)}
}

// ConcatPrimitive returns a new container holding a's values followed by
// b's. Neither input is modified. Both must be non-nil.
func ConcatPrimitive[P Scalar](a, b *Primitive[P]) *Primitive[P] {
	return &Primitive[P]{buf: joined(&a.buf, &b.buf)}
}

// Append returns a new Array holding a's elements followed by values. a
// must be non-nil.
func Append[T any](a *Array[T], values ...T) *Array[T] {
	return Concat(a, &Array[T]{buf: adopt(values)})
}

// AppendPrimitive returns a new container holding p's values followed by
// values. p must be non-nil.
func AppendPrimitive[P Scalar](p *Primitive[P], values ...P) *Primitive[P] {
	return ConcatPrimitive(p, &Primitive[P]{buf: adopt(values)})
}

// Join concatenates erased containers. Containers of the same concrete type
// are joined directly. A Primitive[P] and an Array[*P] are joined by
// unboxing the array first, which fails if any box is nil. Any other
// combination, including a nil operand, is a type mismatch.
func Join(a, b Container) (Container, error) {
	if isNil(a) || isNil(b) {
		return nil, errTypeMismatch("join", a, b)
	}
	return a.concat(b)
}

// unboxer is implemented by Primitive[P] to recognise its boxed form.
type unboxer interface {
	unboxPeer(c Container) (Container, bool, error)
}

func (a *Array[T]) concat(other Container) (Container, error) {
	if o, ok := other.(*Array[T]); ok {
		return Concat(a, o), nil
	}
	if u, ok := other.(unboxer); ok {
		left, matched, err := u.unboxPeer(a)
		if matched {
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrorTypeConversion, "join: cannot unbox left operand")
			}
			return left.concat(other)
		}
	}
	return nil, errTypeMismatch("join", a, other)
}

func (p *Primitive[P]) concat(other Container) (Container, error) {
	if o, ok := other.(*Primitive[P]); ok {
		return ConcatPrimitive(p, o), nil
	}
	right, matched, err := p.unboxTyped(other)
	if matched {
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeConversion, "join: cannot unbox right operand")
		}
		return ConcatPrimitive(p, right), nil
	}
	return nil, errTypeMismatch("join", p, other)
}

func (p *Primitive[P]) unboxPeer(c Container) (Container, bool, error) {
	out, matched, err := p.unboxTyped(c)
	if out == nil {
		return nil, matched, err
	}
	return out, matched, err
}

func (p *Primitive[P]) unboxTyped(c Container) (*Primitive[P], bool, error) {
	boxed, ok := c.(*Array[*P])
	if !ok {
		return nil, false, nil
	}
	out, err := FromBoxed(boxed)
	return out, true, err
}
