// Package arrays provides fixed-size, homogeneous, indexable containers for
// Go, with unboxed scalar variants, shallow and deep structural equality,
// conversion to and from Go collections, and concatenation.
//
// # Architecture
//
// The module is split into a library core and the tooling around it:
//
// 1. Containers (pkg/array): Array[T] for any element type and Primitive[P]
// for unboxed scalars, both backed by one fixed-length storage type. The
// erased Container interface lets code handle either family uniformly.
//
// 2. Interop: JSON through goccy/go-json (pkg/json) and Apache Arrow arrays
// (pkg/arrowbridge), both without boxing scalar values.
//
// 3. Support: structured errors (pkg/errors), pooled string building
// (pkg/strings, pkg/pool), zap logging (pkg/logger), Prometheus operation
// counters (pkg/metrics) and YAML configuration (pkg/config).
//
// # Quick Start
//
//	import "github.com/ajitpratap0/arrays/pkg/array"
//
//	squares, err := array.New(4, func(i int) int { return i * i })
//	if err != nil {
//	    return err
//	}
//	fmt.Println(squares) // [0, 1, 4, 9]
//
//	ints := array.PrimitiveOf[int32](1, 2)
//	boxed := ints.ToBoxed()
//	joined, err := array.Join(ints, boxed) // [1, 2, 1, 2]
//
// # Equality
//
// ShallowEqual compares nested containers by identity while DeepEqual
// compares them by content, so the two relations disagree on separately
// built nested containers. Same is plain identity.
//
// # Command Line
//
// The arrays command runs container operations over JSON or YAML documents:
//
//	arrays eval values.json --op get --index 2
//	arrays concat ints.json boxed.yaml
//	arrays equal a.json b.json
//	arrays convert values.json --to arrow
//
// # Configuration
//
// The CLI reads an optional YAML file:
//
//	logging:
//	  level: info
//	  encoding: console
//	metrics:
//	  enabled: true
//	  summary: true
//	render:
//	  kind: int64
//	  indent: true
//
// Environment variables are supported with ${VAR_NAME} syntax.
//
// # Development
//
// Run tests and benchmarks:
//
//	go test ./...
//	go test -bench=. ./pkg/array/
package arrays
