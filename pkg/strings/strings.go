// Package strings provides pooled string building for container rendering and error formatting
package strings

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/ajitpratap0/arrays/pkg/pool"
)

// BytesToString converts byte slice to string without allocation
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Builder provides efficient string building over a reusable byte buffer
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte to the builder
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write implements io.Writer
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the accumulated string. It shares memory with the builder,
// so callers that return the builder to a pool must Clone it first.
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Len returns the number of accumulated bytes
func (b *Builder) Len() int {
	return len(b.buf)
}

// Cap returns the capacity of the underlying buffer
func (b *Builder) Cap() int {
	return cap(b.buf)
}

// Reset clears the builder while keeping its buffer
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Grow ensures space for another n bytes
func (b *Builder) Grow(n int) {
	if cap(b.buf)-len(b.buf) < n {
		newBuf := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(newBuf, b.buf)
		b.buf = newBuf
	}
}

// Clone returns a copy of s that does not share memory with any builder
func Clone(s string) string {
	return strings.Clone(s)
}

func builderPool(capacity int) *pool.Pool[*Builder] {
	return pool.New(
		func() *Builder { return NewBuilder(capacity) },
		(*Builder).Reset,
	)
}

var (
	// Small strings (< 1KB) - error messages, short containers
	smallBuilderPool = builderPool(1024)

	// Medium strings (1KB - 16KB)
	mediumBuilderPool = builderPool(16 * 1024)

	// Large strings (16KB+) - rendering of big or deeply nested containers
	largeBuilderPool = builderPool(64 * 1024)
)

// BuilderSize represents different builder sizes
type BuilderSize int

const (
	Small  BuilderSize = iota // < 1KB
	Medium                    // 1KB - 16KB
	Large                     // 16KB+
)

// SizeFor picks the builder size class for an estimated output length
func SizeFor(estimated int) BuilderSize {
	switch {
	case estimated > 16*1024:
		return Large
	case estimated > 1024:
		return Medium
	default:
		return Small
	}
}

func poolFor(size BuilderSize) *pool.Pool[*Builder] {
	switch size {
	case Medium:
		return mediumBuilderPool
	case Large:
		return largeBuilderPool
	default:
		return smallBuilderPool
	}
}

// GetBuilder retrieves a pooled builder of the specified size
func GetBuilder(size BuilderSize) *Builder {
	return poolFor(size).Get()
}

// PutBuilder returns a builder to the appropriate pool
func PutBuilder(builder *Builder, size BuilderSize) {
	if builder == nil {
		return
	}
	poolFor(size).Put(builder)
}

// Sprintf provides a pooled alternative to fmt.Sprintf
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	size := SizeFor(len(format) + len(args)*16)
	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	fmt.Fprintf(builder, format, args...)

	return Clone(builder.String())
}

// JoinPooled efficiently joins strings using pooled builder
func JoinPooled(parts []string, delimiter string) string {
	if len(parts) == 0 {
		return ""
	}
	if len(parts) == 1 {
		return parts[0]
	}

	totalLen := 0
	for _, s := range parts {
		totalLen += len(s)
	}
	totalLen += (len(parts) - 1) * len(delimiter)

	size := SizeFor(totalLen)
	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	builder.WriteString(parts[0])
	for i := 1; i < len(parts); i++ {
		builder.WriteString(delimiter)
		builder.WriteString(parts[i])
	}

	return Clone(builder.String())
}

// FormatList renders n items as "[a, b, c]". Each item is written by the
// callback directly into the pooled builder.
func FormatList(n int, item func(i int, b *Builder)) string {
	size := SizeFor(n * 8)
	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	_ = builder.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			builder.WriteString(", ")
		}
		item(i, builder)
	}
	_ = builder.WriteByte(']')

	return Clone(builder.String())
}
