// Package pool provides typed object pooling for the buffers and builders
// used while rendering and encoding containers.
//
// Example usage:
//
//	buffers := pool.New(
//	    func() *bytes.Buffer { return new(bytes.Buffer) },
//	    func(b *bytes.Buffer) { b.Reset() },
//	)
//	buf := buffers.Get()
//	defer buffers.Put(buf)
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper around sync.Pool that resets objects on Put
// and tracks usage statistics. It is safe for concurrent use.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T)
	keep  func(T) bool
	stats struct {
		allocated atomic.Int64
		inUse     atomic.Int64
		gets      atomic.Int64
		dropped   atomic.Int64
	}
}

// New creates a pool. newFn builds an object when the pool is empty; the
// optional reset is applied to every object handed back through Put.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	p.pool.New = func() interface{} {
		p.stats.allocated.Add(1)
		return newFn()
	}
	return p
}

// WithKeep installs a predicate consulted on Put; objects it rejects are
// dropped instead of pooled, for example oversized buffers.
func (p *Pool[T]) WithKeep(keep func(T) bool) *Pool[T] {
	p.keep = keep
	return p
}

// Get retrieves an object, allocating one if the pool is empty.
func (p *Pool[T]) Get() T {
	p.stats.gets.Add(1)
	p.stats.inUse.Add(1)
	return p.pool.Get().(T)
}

// Put resets obj and returns it to the pool.
func (p *Pool[T]) Put(obj T) {
	p.stats.inUse.Add(-1)
	if p.keep != nil && !p.keep(obj) {
		p.stats.dropped.Add(1)
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}

// Stats describes pool usage.
type Stats struct {
	Allocated int64 // objects created by the pool
	InUse     int64 // objects checked out and not yet returned
	Gets      int64 // total Get calls
	Dropped   int64 // objects rejected by the keep predicate
}

// Stats returns current pool statistics.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Allocated: p.stats.allocated.Load(),
		InUse:     p.stats.inUse.Load(),
		Gets:      p.stats.gets.Load(),
		Dropped:   p.stats.dropped.Load(),
	}
}
