package array

import (
	"reflect"

	"github.com/ajitpratap0/arrays/pkg/errors"
)

func errInvalidSize(size int) error {
	return errors.Newf(errors.ErrorTypeInvalidSize, "size %d must not be negative", size).
		WithDetail("size", size)
}

func errIndexOutOfRange(index, size int) error {
	return errors.Newf(errors.ErrorTypeIndexOutOfRange, "index %d out of range [0, %d)", index, size).
		WithDetail("index", index).
		WithDetail("size", size)
}

func errTypeMismatch(op string, a, b interface{}) error {
	return errors.Newf(errors.ErrorTypeTypeMismatch, "%s: incompatible types %s and %s", op, typeName(a), typeName(b)).
		WithDetail("op", op)
}

func typeName(v interface{}) string {
	switch t := v.(type) {
	case reflect.Type:
		return t.String()
	case nil:
		return "<nil>"
	default:
		return reflect.TypeOf(v).String()
	}
}
