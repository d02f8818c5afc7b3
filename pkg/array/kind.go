package array

import (
	"reflect"
	"unsafe"
)

// Kind identifies the element family of a container
type Kind int

const (
	// KindObject is the family of generic Array containers
	KindObject Kind = iota
	KindBool
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindChar
	KindUint8
)

var kindNames = [...]string{
	KindObject:  "object",
	KindBool:    "bool",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindChar:    "char",
	KindUint8:   "uint8",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind by its String form
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindObject, false
}

// Scalar is the set of fixed-width element representations a Primitive
// stores unboxed.
type Scalar interface {
	~bool | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~uint8
}

// Char is a single character. It is a distinct type from int32 so that
// character containers keep their own kind.
type Char rune

func (c Char) String() string { return string(rune(c)) }

// kindOf maps a scalar type to its kind. Named types fall back to their
// underlying representation.
func kindOf[P Scalar]() Kind {
	var zero P
	switch any(zero).(type) {
	case Char:
		return KindChar
	case bool:
		return KindBool
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case uint8:
		return KindUint8
	}

	switch reflect.TypeFor[P]().Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	default:
		return KindUint8
	}
}

// widthOf returns the in-memory width of one P slot in bytes
func widthOf[P Scalar]() int64 {
	var zero P
	return int64(unsafe.Sizeof(zero))
}
