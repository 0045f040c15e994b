package buffer

import (
	"sync"

	runtimekit "github.com/wippyai/runtime-kit"
)

// DefaultMaxPooled is the capacity threshold above which Put releases a
// buffer instead of pooling it, to prevent memory bloat.
const DefaultMaxPooled = 64 * 1024

// Pool recycles Buffers across uses. All pooled buffers share one
// allocator. Buffers whose blocks grew past the threshold are freed on Put
// rather than kept.
type Pool struct {
	alloc runtimekit.Allocator
	max   int64
	pool  sync.Pool
}

// NewPool returns a pool issuing buffers backed by a. A nil allocator
// selects the process heap. maxPooled <= 0 selects DefaultMaxPooled.
func NewPool(a runtimekit.Allocator, maxPooled int64) *Pool {
	if maxPooled <= 0 {
		maxPooled = DefaultMaxPooled
	}
	p := &Pool{alloc: a, max: maxPooled}
	p.pool.New = func() any { return New(a) }
	return p
}

// Get returns an empty buffer, reusing a pooled one when available.
func (p *Pool) Get() *Buffer {
	return p.pool.Get().(*Buffer)
}

// Put returns a buffer obtained from Get to the pool. Freed buffers are
// ignored, oversized ones are released.
func (p *Pool) Put(b *Buffer) {
	if b == nil || b.freed {
		return
	}
	if int64(len(b.block)) > p.max {
		b.Free() // reject oversized
		return
	}
	b.Reset()
	p.pool.Put(b)
}
