// Package pool provides object pooling for minparse
// Used by the parser to reuse the positional buffer between Parse calls
package pool

import (
	"sync"
)

// Pool is a type-safe wrapper around sync.Pool
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Optional reset function called before reuse
	keep  func(*T) bool
}

// NewPool creates a new generic pool with the given factory function
func NewPool[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return factory()
			},
		},
	}
}

// NewPoolWithReset creates a pool with a reset function called before reuse
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put returns an object to the pool for reuse. Objects rejected by the keep
// predicate are dropped and left to the GC.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.keep != nil && !p.keep(obj) {
		return
	}
	p.pool.Put(obj)
}

// StringSlicePool pools string slices, dropping slices that grew past maxCap
type StringSlicePool struct {
	*Pool[[]string]
}

// NewStringSlicePool creates a new string slice pool
func NewStringSlicePool(defaultCap, maxCap int) *StringSlicePool {
	p := NewPoolWithReset(
		func() *[]string {
			slice := make([]string, 0, defaultCap)
			return &slice
		},
		func(slice *[]string) {
			clear(*slice)
			*slice = (*slice)[:0] // Reset length but keep capacity
		},
	)
	if maxCap > 0 {
		p.keep = func(slice *[]string) bool { return cap(*slice) <= maxCap }
	}
	return &StringSlicePool{Pool: p}
}

// Args is the global pool for positional argument buffers
var Args = NewStringSlicePool(16, 1024)

// GetArgs retrieves an empty positional buffer
func GetArgs() *[]string {
	return Args.Get()
}

// PutArgs returns a positional buffer to the global pool
func PutArgs(slice *[]string) {
	Args.Put(slice)
}
