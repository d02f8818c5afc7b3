package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/arrays/pkg/array"
	"github.com/ajitpratap0/arrays/pkg/errors"
	"github.com/ajitpratap0/arrays/pkg/json"
)

// document is the object form of an input file.
type document struct {
	Kind   string          `json:"kind"`
	Values json.RawMessage `json:"values"`
}

// readDocument loads a container from path ("-" reads stdin). YAML files are
// recognised by extension and normalised to JSON before decoding.
func readDocument(path, defaultKind string, stdin io.Reader) (array.Container, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeFile, "failed to read input").
			WithDetail("path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if data, err = yamlToJSON(data); err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to parse YAML input").
				WithDetail("path", path)
		}
	}

	c, err := decodeDocument(data, defaultKind)
	if err != nil {
		var e *errors.Error
		if errors.As(err, &e) {
			e.WithDetail("path", path)
		}
		return nil, err
	}
	return c, nil
}

func decodeDocument(data []byte, defaultKind string) (array.Container, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return decodeValues(defaultKind, data)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "input is neither a list nor a document")
	}
	if doc.Values == nil {
		return nil, errors.New(errors.ErrorTypeData, "document has no values")
	}
	kind := doc.Kind
	if kind == "" {
		kind = defaultKind
	}
	return decodeValues(kind, doc.Values)
}

// unmarshalContainer is a container that decodes itself from a JSON list.
type unmarshalContainer interface {
	array.Container
	UnmarshalJSON(data []byte) error
}

// decodeValues decodes a JSON list into the container for kind. A leading
// "*" selects the boxed generic form of a scalar kind.
func decodeValues(kind string, raw []byte) (array.Container, error) {
	name, boxed := strings.CutPrefix(kind, "*")
	k, ok := array.ParseKind(name)
	if !ok || (boxed && k == array.KindObject) {
		return nil, errors.Newf(errors.ErrorTypeValidation, "unknown element kind %q", kind).
			WithDetail("kind", kind)
	}

	var c unmarshalContainer
	if boxed {
		c = boxedFor(k)
	} else {
		c = containerFor(k)
	}
	if err := c.UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to decode values").
			WithDetail("kind", kind)
	}
	if objects, ok := c.(*array.Array[any]); ok {
		return nestLists(objects), nil
	}
	return c, nil
}

// nestLists turns every nested JSON list into its own container, so that
// nested lists compare by identity under shallow equality.
func nestLists(a *array.Array[any]) *array.Array[any] {
	values := a.Slice()
	for i, v := range values {
		if list, ok := v.([]any); ok {
			values[i] = nestLists(array.FromSlice(list))
		}
	}
	return array.FromSlice(values)
}

func containerFor(k array.Kind) unmarshalContainer {
	switch k {
	case array.KindBool:
		return &array.BoolArray{}
	case array.KindInt8:
		return &array.Int8Array{}
	case array.KindInt16:
		return &array.Int16Array{}
	case array.KindInt32:
		return &array.Int32Array{}
	case array.KindInt64:
		return &array.Int64Array{}
	case array.KindFloat32:
		return &array.Float32Array{}
	case array.KindFloat64:
		return &array.Float64Array{}
	case array.KindChar:
		return &array.CharArray{}
	case array.KindUint8:
		return &array.ByteArray{}
	default:
		return &array.Array[any]{}
	}
}

func boxedFor(k array.Kind) unmarshalContainer {
	switch k {
	case array.KindBool:
		return &array.Array[*bool]{}
	case array.KindInt8:
		return &array.Array[*int8]{}
	case array.KindInt16:
		return &array.Array[*int16]{}
	case array.KindInt32:
		return &array.Array[*int32]{}
	case array.KindInt64:
		return &array.Array[*int64]{}
	case array.KindFloat32:
		return &array.Array[*float32]{}
	case array.KindFloat64:
		return &array.Array[*float64]{}
	case array.KindChar:
		return &array.Array[*array.Char]{}
	default:
		return &array.Array[*uint8]{}
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// jsonToYAML re-encodes a JSON document as YAML.
func jsonToYAML(data []byte) ([]byte, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
