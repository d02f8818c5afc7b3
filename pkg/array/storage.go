package array

// storage is the fixed-length backing buffer shared by every container.
// The slice is allocated once and never resliced or appended to.
type storage[T any] struct {
	data []T
}

func newStorage[T any](size int) (storage[T], error) {
	if size < 0 {
		return storage[T]{}, errInvalidSize(size)
	}
	return storage[T]{data: make([]T, size)}, nil
}

// adopt takes ownership of values without copying
func adopt[T any](values []T) storage[T] {
	if values == nil {
		values = []T{}
	}
	return storage[T]{data: values}
}

func (s *storage[T]) len() int {
	return len(s.data)
}

func (s *storage[T]) check(i int) error {
	if i < 0 || i >= len(s.data) {
		return errIndexOutOfRange(i, len(s.data))
	}
	return nil
}

func (s *storage[T]) load(i int) (T, error) {
	if err := s.check(i); err != nil {
		var zero T
		return zero, err
	}
	return s.data[i], nil
}

func (s *storage[T]) store(i int, v T) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.data[i] = v
	return nil
}

func (s *storage[T]) fill(v T) {
	for i := range s.data {
		s.data[i] = v
	}
}

func (s *storage[T]) copyOut() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// joined allocates a new buffer holding a followed by b
func joined[T any](a, b *storage[T]) storage[T] {
	out := make([]T, len(a.data)+len(b.data))
	n := copy(out, a.data)
	copy(out[n:], b.data)
	return storage[T]{data: out}
}
