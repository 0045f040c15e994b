package alloc

import (
	runtimekit "github.com/wippyai/runtime-kit"
)

// Stats is a snapshot of allocator activity.
type Stats struct {
	Allocs   int64 // successful Alloc calls
	Reallocs int64 // successful Realloc calls
	Frees    int64 // Free calls with a non-nil block
	Failures int64 // refused Alloc and Realloc calls
	InUse    int64 // bytes currently allocated
	Peak     int64 // highest InUse observed
}

// Counting wraps another allocator and records activity statistics.
type Counting struct {
	inner runtimekit.Allocator
	stats Stats
}

// NewCounting returns a counting allocator over inner. A nil inner means the
// process heap.
func NewCounting(inner runtimekit.Allocator) *Counting {
	if inner == nil {
		inner = Heap{}
	}
	return &Counting{inner: inner}
}

func (c *Counting) Alloc(size int64) ([]byte, error) {
	block, err := c.inner.Alloc(size)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	c.stats.Allocs++
	c.adjust(int64(len(block)))
	return block, nil
}

func (c *Counting) Realloc(block []byte, size int64) ([]byte, error) {
	fresh, err := c.inner.Realloc(block, size)
	if err != nil {
		c.stats.Failures++
		return nil, err
	}
	c.stats.Reallocs++
	c.adjust(int64(len(fresh)) - int64(len(block)))
	return fresh, nil
}

func (c *Counting) Free(block []byte) {
	if block != nil {
		c.stats.Frees++
		c.adjust(-int64(len(block)))
	}
	c.inner.Free(block)
}

// Stats returns a snapshot of the counters so far.
func (c *Counting) Stats() Stats {
	return c.stats
}

// ResetStats zeroes the counters. Bytes in use are preserved since they
// describe live blocks, not history.
func (c *Counting) ResetStats() {
	inUse := c.stats.InUse
	c.stats = Stats{InUse: inUse, Peak: inUse}
}

func (c *Counting) adjust(delta int64) {
	c.stats.InUse += delta
	if c.stats.InUse > c.stats.Peak {
		c.stats.Peak = c.stats.InUse
	}
}
