package array

import (
	"fmt"

	"github.com/ajitpratap0/arrays/pkg/json"
)

// Option is an explicit per-slot absent marker. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent marker.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Equal compares two options under the element equality rule.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || elementEqual(o.value, other.value)
}

func (o Option[T]) deepEqualTo(other any) bool {
	p, ok := other.(Option[T])
	if !ok || o.ok != p.ok {
		return false
	}
	return !o.ok || deepElement(o.value, p.value)
}

func (o Option[T]) String() string {
	if !o.ok {
		return "null"
	}
	return fmt.Sprint(o.value)
}

// MarshalJSON encodes None as null.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None.
func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Option[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
