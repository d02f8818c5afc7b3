package array

import (
	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/json"
)

// MarshalJSON encodes the array as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.MarshalElements(a.Len(), func(i int) interface{} { return a.buf.data[i] })
}

// UnmarshalJSON decodes a JSON array. Decoding into a zero Array sizes it
// from the input; decoding into an already sized Array requires the input
// to have exactly Len() elements, and leaves the array unchanged otherwise.
func (a *Array[T]) UnmarshalJSON(data []byte) error {
	values, err := decodeElements[T](data)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to decode array")
	}
	buf, err := decoded(a.buf, values)
	if err != nil {
		return err
	}
	a.buf = buf
	return nil
}

// MarshalJSON encodes the container as a JSON array of numbers, booleans
// or one-character strings. Byte containers are not base64 encoded.
func (p *Primitive[P]) MarshalJSON() ([]byte, error) {
	return json.MarshalElements(p.Len(), func(i int) interface{} { return p.buf.data[i] })
}

// UnmarshalJSON decodes a JSON array with the same sizing rule as Array.
func (p *Primitive[P]) UnmarshalJSON(data []byte) error {
	values, err := decodeElements[P](data)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "failed to decode primitive array").
			WithDetail("kind", kindOf[P]().String())
	}
	buf, err := decoded(p.buf, values)
	if err != nil {
		return err
	}
	p.buf = buf
	return nil
}

// decodeElements decodes element by element so that byte element types
// read number arrays rather than base64 strings.
func decodeElements[T any](data []byte) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	values := make([]T, len(raw))
	for i, elem := range raw {
		if err := json.Unmarshal(elem, &values[i]); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode element").
				WithDetail("index", i)
		}
	}
	return values, nil
}

func decoded[T any](current storage[T], values []T) (storage[T], error) {
	if current.data == nil {
		return adopt(values), nil
	}
	if len(current.data) != len(values) {
		return current, errors.Newf(errors.ErrorTypeValidation,
			"cannot decode %d elements into a container of size %d", len(values), len(current.data)).
			WithDetail("size", len(current.data))
	}
	copy(current.data, values)
	return current, nil
}

// MarshalJSON encodes a character as a one-character string.
func (c Char) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(rune(c)))
}

// UnmarshalJSON decodes a one-character string.
func (c *Char) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return errors.Newf(errors.ErrorTypeData, "char must be exactly one character, got %q", s)
	}
	*c = Char(runes[0])
	return nil
}
