package alloc

import (
	"math"
	"unsafe"

	runtimekit "github.com/wippyai/runtime-kit"
	"github.com/wippyai/runtime-kit/errors"
)

const (
	opAlloc   = errors.Op("alloc.alloc")
	opRealloc = errors.Op("alloc.realloc")
)

// Heap allocates blocks on the Go heap. The zero value is ready to use and
// all Heap values are equivalent.
//
// Blocks are carved from []uint64 backing arrays, so the first byte is always
// aligned to runtimekit.MaxAlign. Free drops the reference and lets the
// garbage collector reclaim the memory. Requests the Go runtime refuses
// outright (lengths beyond the platform slice limit) come back as
// out-of-memory errors; actual exhaustion of the process address space is
// fatal at the runtime level and cannot be reported.
type Heap struct{}

// Default returns the allocator used when a container constructor receives a
// nil Allocator.
func Default() runtimekit.Allocator {
	return Heap{}
}

func (Heap) Alloc(size int64) (block []byte, err error) {
	if size < 0 {
		return nil, errors.NegativeValue(opAlloc, "size", size)
	}
	if size == 0 {
		return nil, nil
	}
	words, ok := wordCount(size)
	if !ok {
		return nil, errors.AllocationFailed(opAlloc, size, nil)
	}

	// makeslice panics instead of returning nil when the length is
	// unrepresentable for this platform's heap.
	defer func() {
		if recover() != nil {
			block, err = nil, errors.AllocationFailed(opAlloc, size, nil)
		}
	}()
	backing := make([]uint64, words)

	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), words*runtimekit.MaxAlign)
	return bytes[:size:size], nil
}

func (h Heap) Realloc(block []byte, size int64) ([]byte, error) {
	if size < 0 {
		return nil, errors.NegativeValue(opRealloc, "size", size)
	}
	if int64(len(block)) == size {
		return block, nil
	}
	fresh, err := h.Alloc(size)
	if err != nil {
		return nil, errors.AllocationFailed(opRealloc, size, err)
	}
	copy(fresh, block)
	return fresh, nil
}

func (Heap) Free(block []byte) {}

// wordCount converts a byte size to a count of 8-byte words, rejecting sizes
// whose word count cannot be a slice length.
func wordCount(size int64) (int64, bool) {
	if size > math.MaxInt64-(runtimekit.MaxAlign-1) {
		return 0, false
	}
	words := (size + runtimekit.MaxAlign - 1) / runtimekit.MaxAlign
	if words > math.MaxInt {
		return 0, false
	}
	return words, true
}
