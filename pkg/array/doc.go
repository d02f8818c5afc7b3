// Package array provides fixed-size, homogeneous, indexable containers.
//
// # Overview
//
// Two container families share one operation surface:
//   - Array[T]: holds any element type with ordinary Go value/reference
//     semantics. Slots may hold nil when T is a pointer or interface, or an
//     explicit absent marker when built with NullFilled.
//   - Primitive[P]: holds unboxed scalars (bool, int8, int16, int32, int64,
//     float32, float64, Char, uint8) contiguously, with no absent state.
//
// Both are backed by the same fixed-length storage. The size is chosen at
// construction and never changes; Get and Set outside [0, Len()) fail with
// an index_out_of_range error and leave the container untouched.
//
// # Construction
//
//	a, err := array.New(5, func(i int) int { return i * i }) // [0, 1, 4, 9, 16]
//	b, err := array.Filled(3, "x")                          // [x, x, x]
//	c, err := array.NullFilled[string](2)                    // [null, null]
//	d := array.Of(1, 2, 3)
//	e := array.FromSeq(maps.Keys(m))
//	p := array.PrimitiveOf[int32](1, 2, 3)
//
// # Equality
//
// ShallowEqual compares elements with the element type's own equality rule
// and compares nested containers by identity. DeepEqual descends into
// nested containers. The two relations intentionally disagree for nested
// containers whose inner instances are distinct:
//
//	x := array.Of(array.Of(1, 2))
//	y := array.Of(array.Of(1, 2))
//	array.ShallowEqual(x, y) // false
//	array.DeepEqual(x, y)    // true
//
// Neither relation is identity; use Same for that. ShallowEqualContainers
// and DeepEqualContainers apply the same relations to erased containers,
// and At reads one element of an erased container.
//
// # Conversion
//
// Slice, ToSet, Distinct and ToMap export to Go collections; FromSlice,
// FromSeq, FromMap and FromSet import from them. ToBoxed and FromBoxed
// transcode between Primitive[P] and Array[*P].
//
// # Concatenation
//
// Concat and ConcatPrimitive join two containers of the same static type
// into a new one. Join does the same for erased containers and unboxes an
// Array[*P] operand when the other side is a Primitive[P].
//
// # Concurrency
//
// Containers carry no locks. Reads may run concurrently; mutation requires
// a single owner or external synchronization.
package array
