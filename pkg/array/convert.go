package array

import (
	"iter"
	"maps"
	"reflect"
	"slices"

	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/json"
)

// Pair is an immutable key/value tuple, the element type ToMap consumes.
type Pair[K, V any] struct {
	key   K
	value V
}

// NewPair builds a Pair.
func NewPair[K, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{key: key, value: value}
}

// Key returns the pair's key.
func (p Pair[K, V]) Key() K { return p.key }

// Value returns the pair's value.
func (p Pair[K, V]) Value() V { return p.value }

func (p Pair[K, V]) pairKey() any   { return p.key }
func (p Pair[K, V]) pairValue() any { return p.value }

// MarshalJSON encodes the pair as a two-element array.
func (p Pair[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.key, p.value})
}

// UnmarshalJSON decodes a two-element array.
func (p *Pair[K, V]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errors.Newf(errors.ErrorTypeNotPairElement, "expected 2 elements, got %d", len(raw))
	}
	var out Pair[K, V]
	if err := json.Unmarshal(raw[0], &out.key); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &out.value); err != nil {
		return err
	}
	*p = out
	return nil
}

type pairElement interface {
	pairKey() any
	pairValue() any
}

// Slice returns a copy of the elements in index order.
func (a *Array[T]) Slice() []T {
	return a.buf.copyOut()
}

// FromSlice copies values into a new Array.
func FromSlice[T any](values []T) *Array[T] {
	return &Array[T]{buf: adopt(slices.Clone(values))}
}

// FromSeq materializes seq eagerly; the Array's size is the number of
// elements seq yields.
func FromSeq[T any](seq iter.Seq[T]) *Array[T] {
	return &Array[T]{buf: adopt(slices.Collect(seq))}
}

// FromMap builds an Array of pairs. When cmp is non-nil the pairs are
// ordered by key; otherwise the order follows map iteration.
func FromMap[K comparable, V any](m map[K]V, cmp func(a, b K) int) *Array[Pair[K, V]] {
	keys := slices.Collect(maps.Keys(m))
	if cmp != nil {
		slices.SortFunc(keys, cmp)
	}
	pairs := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		pairs[i] = NewPair(k, m[k])
	}
	return &Array[Pair[K, V]]{buf: adopt(pairs)}
}

// FromSet builds an Array from a set. When cmp is non-nil the elements are
// sorted; otherwise the order follows map iteration.
func FromSet[T comparable](set map[T]struct{}, cmp func(a, b T) int) *Array[T] {
	values := slices.Collect(maps.Keys(set))
	if cmp != nil {
		slices.SortFunc(values, cmp)
	}
	return &Array[T]{buf: adopt(values)}
}

// ToSet returns the distinct elements of a under the element equality
// rule, keeping the first occurrence among equal elements. Float elements
// treat NaN as equal to itself and elements that declare an Equal method
// are deduplicated by it. When T is an interface type every element must
// hold a hashable value; otherwise ToSet fails with a type mismatch and
// returns no set.
func ToSet[T comparable](a *Array[T]) (map[T]struct{}, error) {
	values := a.buf.data
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		for i, v := range values {
			if any(v) != nil && !reflect.ValueOf(any(v)).Comparable() {
				return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "element %d has unhashable type %s", i, typeName(any(v))).
					WithDetail("index", i)
			}
		}
	}
	if needsElementRule[T]() {
		values = distinct(values)
	}
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set, nil
}

// needsElementRule reports whether two T values can be equal under the
// element rule while differing under ==.
func needsElementRule[T any]() bool {
	var zero T
	if _, ok := any(zero).(Equaler[T]); ok {
		return true
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Interface, reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Distinct returns a new Array holding the first occurrence of every
// distinct element, in index order. It works for element types that are
// not comparable.
func Distinct[T any](a *Array[T]) *Array[T] {
	return &Array[T]{buf: adopt(distinct(a.buf.data))}
}

func distinct[T any](values []T) []T {
	out := make([]T, 0, len(values))
	for _, v := range values {
		if !slices.ContainsFunc(out, func(seen T) bool { return elementEqual(seen, v) }) {
			out = append(out, v)
		}
	}
	return out
}

// ToMap builds a map from an Array of pairs. Pairs are applied in index
// order, so a later pair overwrites an earlier one with the same key.
func ToMap[K comparable, V any](a *Array[Pair[K, V]]) map[K]V {
	m := make(map[K]V, a.Len())
	for _, p := range a.buf.data {
		m[p.key] = p.value
	}
	return m
}

// ToMapAny is ToMap for erased containers. Every element must be a Pair,
// a two-element []any or a two-element container, and keys must be
// hashable. Nothing is returned on failure.
func ToMapAny(c Container) (map[any]any, error) {
	m := make(map[any]any, c.Len())
	for i := 0; i < c.Len(); i++ {
		key, value, ok := splitPair(c.valueAt(i))
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeNotPairElement, "element %d is %s, not a pair", i, typeName(c.valueAt(i))).
				WithDetail("index", i)
		}
		if key != nil && !reflect.ValueOf(key).Comparable() {
			return nil, errors.Newf(errors.ErrorTypeTypeMismatch, "key of element %d has non-comparable type %s", i, typeName(key)).
				WithDetail("index", i)
		}
		m[key] = value
	}
	return m, nil
}

func splitPair(v any) (key, value any, ok bool) {
	switch p := v.(type) {
	case pairElement:
		return p.pairKey(), p.pairValue(), true
	case []any:
		if len(p) == 2 {
			return p[0], p[1], true
		}
	case Container:
		if p.Len() == 2 {
			return p.valueAt(0), p.valueAt(1), true
		}
	}
	return nil, nil, false
}

// Equal compares pairs component-wise under the element equality rule.
func (p Pair[K, V]) Equal(other Pair[K, V]) bool {
	return elementEqual(p.key, other.key) && elementEqual(p.value, other.value)
}

func (p Pair[K, V]) deepEqualTo(other any) bool {
	o, ok := other.(Pair[K, V])
	return ok && deepElement(p.key, o.key) && deepElement(p.value, o.value)
}
