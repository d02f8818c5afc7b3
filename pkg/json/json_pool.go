// Package json provides JSON encoding for containers on top of goccy/go-json,
// with pooled buffers for repeated encoding
package json

import (
	"bytes"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/ajitpratap0/arrays/pkg/pool"
)

// RawMessage is a raw encoded JSON value
type RawMessage = gojson.RawMessage

// Number is a JSON number literal kept as text
type Number = gojson.Number

// maxPooledBuffer keeps very large buffers out of the pool
const maxPooledBuffer = 1024 * 1024

var bufferPool = pool.New(
	func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 4096)) },
	func(buf *bytes.Buffer) { buf.Reset() },
).WithKeep(func(buf *bytes.Buffer) bool { return buf.Cap() <= maxPooledBuffer })

// GetBuffer gets a pooled bytes.Buffer
func GetBuffer() *bytes.Buffer {
	return bufferPool.Get()
}

// PutBuffer returns a buffer to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	bufferPool.Put(buf)
}

// NewEncoder returns an encoder configured the way every writer in this
// module expects: no HTML escaping, optional indentation.
func NewEncoder(w io.Writer, indent string) *gojson.Encoder {
	enc := gojson.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// NewDecoder returns a decoder that keeps numbers as Number so untyped
// input does not lose integer precision.
func NewDecoder(r io.Reader) *gojson.Decoder {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// Marshal is a high-performance drop-in replacement for json.Marshal
func Marshal(v interface{}) ([]byte, error) {
	return gojson.Marshal(v)
}

// Unmarshal is a high-performance drop-in replacement for json.Unmarshal
func Unmarshal(data []byte, v interface{}) error {
	return gojson.Unmarshal(data, v)
}

// MarshalIndent is a high-performance replacement for json.MarshalIndent
func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}

// MarshalToWriter encodes v through a pooled buffer and writes it to w in
// one call.
func MarshalToWriter(w io.Writer, v interface{}, indent string) error {
	buf := GetBuffer()
	defer PutBuffer(buf)

	if err := NewEncoder(buf, indent).Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// DecodeFrom decodes a single JSON document from r into v.
func DecodeFrom(r io.Reader, v interface{}) error {
	return NewDecoder(r).Decode(v)
}

// MarshalElements encodes n elements as a JSON array, calling elem for each
// index. The result does not alias any pooled memory.
func MarshalElements(n int, elem func(i int) interface{}) ([]byte, error) {
	buf := GetBuffer()
	defer PutBuffer(buf)

	buf.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		data, err := gojson.Marshal(elem(i))
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}
